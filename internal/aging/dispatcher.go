package aging

import (
	"fmt"

	"github.com/osse101/GildedTros_Go/internal/domain"
)

// Resolver maps an item name onto its category. Names it does not know
// resolve to domain.CategoryRegular.
type Resolver interface {
	Resolve(name string) domain.Category
}

// Dispatcher assigns items to their aging rule and checks the category
// invariants at assignment time.
type Dispatcher struct {
	resolver Resolver
	engine   *Engine
}

// NewDispatcher creates a dispatcher backed by resolver
func NewDispatcher(resolver Resolver) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		engine:   NewEngine(),
	}
}

// Categorize returns the category governing item without validating it
func (d *Dispatcher) Categorize(item *domain.Item) domain.Category {
	return d.resolver.Resolve(item.Name)
}

// Assign validates item against its category and returns the tracked pair.
// The returned value borrows item; it does not copy its counters.
func (d *Dispatcher) Assign(item *domain.Item) (*Tracked, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgItemNil)
	}
	category := d.Categorize(item)
	if err := CheckInvariants(item, category); err != nil {
		return nil, err
	}
	return &Tracked{item: item, category: category, engine: d.engine}, nil
}

// Validate re-checks item against the category it resolves to. Aging never
// re-validates on its own; callers that need it after many updates call this.
func (d *Dispatcher) Validate(item *domain.Item) error {
	if item == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgItemNil)
	}
	return CheckInvariants(item, d.Categorize(item))
}

// CheckInvariants reports whether item's quality is inside the bounds of category
func CheckInvariants(item *domain.Item, category domain.Category) error {
	if !category.Valid() {
		return domain.ErrCategoryNotAssigned
	}
	lower, upper := category.QualityBounds()
	if item.Quality < lower || item.Quality > upper {
		if lower == upper {
			return fmt.Errorf("%w: %s item %q must have quality %d, got %d",
				domain.ErrInvariantViolation, category, item.Name, lower, item.Quality)
		}
		return fmt.Errorf("%w: %s item %q quality %d outside [%d, %d]",
			domain.ErrInvariantViolation, category, item.Name, item.Quality, lower, upper)
	}
	return nil
}
