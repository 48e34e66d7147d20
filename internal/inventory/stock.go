package inventory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/GildedTros_Go/configs"
	"github.com/osse101/GildedTros_Go/internal/domain"
	"github.com/osse101/GildedTros_Go/internal/validation"
)

// StockFile is the on-disk list of items to put on the shelf
type StockFile struct {
	Items []domain.Item `json:"items"`
}

// LoadStock reads a stock file and returns fresh items owned by the caller.
// Category bounds are not checked here; Register does that.
func LoadStock(path string) ([]*domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock file: %w", err)
	}

	if err := validation.NewSchemaValidator(configs.Schemas).ValidateBytes(data, configs.StockSchema); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var file StockFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse stock file: %w", err)
	}

	items := make([]*domain.Item, len(file.Items))
	for i := range file.Items {
		items[i] = domain.NewItem(file.Items[i].Name, file.Items[i].SellIn, file.Items[i].Quality)
	}
	return items, nil
}
