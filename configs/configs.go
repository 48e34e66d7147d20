// Package configs ships the JSON schemas and the sample data files.
package configs

import "embed"

// Schema file names inside Schemas
const (
	CatalogSchema = "schemas/catalog.schema.json"
	StockSchema   = "schemas/stock.schema.json"
)

// Schemas holds every JSON schema the loaders validate against
//
//go:embed schemas/*.json
var Schemas embed.FS
