package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GildedTros_Go/configs"
	"github.com/osse101/GildedTros_Go/internal/domain"
	"github.com/osse101/GildedTros_Go/internal/logger"
	"github.com/osse101/GildedTros_Go/internal/validation"
)

// Config represents the JSON catalog file
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Entries []Def `json:"entries" validate:"required,min=1,dive"`
}

// Def represents a single catalog entry in the JSON
type Def struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// Loader handles loading and validating catalog files
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) (*Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(configs.Schemas),
		structValidator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, configs.CatalogSchema); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaCheckFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Entries) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoEntriesDefined)
	}
	if err := l.structValidator.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(config.Entries))
	for i, def := range config.Entries {
		if _, err := domain.ParseCategory(def.Category); err != nil {
			return fmt.Errorf(ErrFmtEntryBadCategory, ErrInvalidConfig, def.Name, err)
		}
		if seen[def.Name] {
			return fmt.Errorf("%w: '%s' (index %d)", ErrDuplicateName, def.Name, i)
		}
		seen[def.Name] = true
	}
	return nil
}

// Build turns a validated configuration into a Catalog
func (l *catalogLoader) Build(config *Config) (*Catalog, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(config.Entries))
	for _, def := range config.Entries {
		category, err := domain.ParseCategory(def.Category)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtEntryBadCategory, ErrInvalidConfig, def.Name, err)
		}
		entries = append(entries, Entry{Name: def.Name, Category: category})
	}
	return New(config.Version, entries)
}

// LoadCatalog returns the catalog at path, or the built-in one when path is empty
func LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	log := logger.FromContext(ctx)
	if path == "" {
		log.Debug(LogMsgCatalogDefault)
		return Default(), nil
	}

	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	c, err := loader.Build(config)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded, "path", path, "version", c.Version(), "entries", c.Len())
	return c, nil
}
