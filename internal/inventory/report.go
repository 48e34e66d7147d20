package inventory

import "github.com/osse101/GildedTros_Go/internal/domain"

// Change records one item's counters before and after a run
type Change struct {
	Name     string
	Category domain.Category
	Before   domain.State
	After    domain.State
}

// QualityDelta returns the signed quality change of the item
func (c Change) QualityDelta() int {
	return c.After.Quality - c.Before.Quality
}

// Report summarises one advance run
type Report struct {
	RunID   string
	Days    int
	Changes []Change
}
