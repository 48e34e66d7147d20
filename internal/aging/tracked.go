package aging

import (
	"github.com/osse101/GildedTros_Go/internal/domain"
)

// Tracked pairs a caller-owned item with the category it was assigned.
// Only Dispatcher.Assign produces a usable Tracked; the zero value refuses
// to advance.
type Tracked struct {
	item     *domain.Item
	category domain.Category
	engine   *Engine
}

// Item returns the underlying item
func (t *Tracked) Item() *domain.Item {
	return t.item
}

// Category returns the category the item was assigned
func (t *Tracked) Category() domain.Category {
	return t.category
}

// Advance ages the item by days in place. A negative count is rejected before
// anything is mutated.
func (t *Tracked) Advance(days int) error {
	if t == nil || t.item == nil || t.engine == nil || !t.category.Valid() {
		return domain.ErrCategoryNotAssigned
	}
	next, err := t.engine.Age(t.category, t.item.State(), days)
	if err != nil {
		return err
	}
	t.item.Apply(next)
	return nil
}
