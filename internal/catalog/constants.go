package catalog

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil         = "config is nil"
	ErrMsgNoEntriesDefined  = "no entries defined"
	ErrFmtEntryBadCategory  = "%w: entry '%s': %v"
	ErrFmtSchemaCheckFailed = "schema validation failed for %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded  = "Catalog loaded"
	LogMsgCatalogDefault = "No catalog path configured, using built-in catalog"
)

// DefaultVersion is reported by the built-in catalog
const DefaultVersion = "builtin"
