package catalog

import (
	"errors"
	"fmt"

	"github.com/osse101/GildedTros_Go/internal/domain"
)

// Sentinel errors for the catalog
var (
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// Entry binds one exact item name to a category
type Entry struct {
	Name     string
	Category domain.Category
}

// Catalog is the exact-match table from item name to category. Names that
// are not listed are regular items.
type Catalog struct {
	version string
	byName  map[string]domain.Category
	entries []Entry
}

// New builds a catalog from entries. Each name may appear once.
func New(version string, entries []Entry) (*Catalog, error) {
	c := &Catalog{
		version: version,
		byName:  make(map[string]domain.Category, len(entries)),
		entries: make([]Entry, 0, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry at index %d has empty name", ErrInvalidConfig, i)
		}
		if !e.Category.Valid() {
			return nil, fmt.Errorf("%w: entry '%s' has no category", ErrInvalidConfig, e.Name)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateName, e.Name)
		}
		c.byName[e.Name] = e.Category
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Default returns the shop's built-in catalog
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultEntries())
	if err != nil {
		panic(err) // static table
	}
	return c
}

func defaultEntries() []Entry {
	return []Entry{
		{Name: domain.ItemGoodWine, Category: domain.CategoryAppreciating},
		{Name: domain.ItemBackstageRefactor, Category: domain.CategoryTimeLimited},
		{Name: domain.ItemBackstageHAXX, Category: domain.CategoryTimeLimited},
		{Name: domain.ItemKeychain, Category: domain.CategoryFixedValue},
		{Name: domain.ItemDuplicateCode, Category: domain.CategoryFastDegrading},
		{Name: domain.ItemLongMethods, Category: domain.CategoryFastDegrading},
		{Name: domain.ItemUglyVariableNames, Category: domain.CategoryFastDegrading},
	}
}

// Resolve returns the category for name, falling back to regular
func (c *Catalog) Resolve(name string) domain.Category {
	if category, ok := c.byName[name]; ok {
		return category
	}
	return domain.CategoryRegular
}

// Version returns the catalog version string
func (c *Catalog) Version() string {
	return c.version
}

// Entries returns a copy of the special entries in declaration order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of special entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
