package config

import (
	"os"
	"testing"
)

var allEnvVars = []string{
	EnvLogLevel,
	EnvLogFormat,
	EnvEnvironment,
	EnvServiceName,
	EnvVersion,
	EnvCatalogPath,
	EnvStockPath,
	EnvDays,
	EnvMetricsTextfile,
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}
