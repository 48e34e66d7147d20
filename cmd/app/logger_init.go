package main

import (
	"github.com/osse101/GildedTros_Go/internal/config"
	"github.com/osse101/GildedTros_Go/internal/logger"
)

// initLogger installs the process logger; development runs also log call sites
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.IsDevelopment(),
	})
}
