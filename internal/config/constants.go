package config

// Environment variable names
const (
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvCatalogPath     = "CATALOG_PATH"
	EnvStockPath       = "STOCK_PATH"
	EnvDays            = "DAYS"
	EnvMetricsTextfile = "METRICS_TEXTFILE"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "gilded-tros"
	DefaultVersion     = "dev"
	DefaultStockPath   = "configs/stock.json"
	DefaultDays        = 1
)
