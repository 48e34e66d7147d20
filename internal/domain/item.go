package domain

import "fmt"

// Item is a single stocked good. The caller owns it; the aging rules only
// ever rewrite SellIn and Quality in place.
type Item struct {
	Name    string `json:"name" validate:"required"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// NewItem creates an item with its initial counters
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{Name: name, SellIn: sellIn, Quality: quality}
}

// String renders the item the way the shop ledger prints it
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// State returns the two mutable counters of the item
func (i Item) State() State {
	return State{SellIn: i.SellIn, Quality: i.Quality}
}

// Apply writes the counters back onto the item
func (i *Item) Apply(s State) {
	i.SellIn = s.SellIn
	i.Quality = s.Quality
}

// State is the full mutable state of an item. Aging rules are pure functions
// from one State to the next.
type State struct {
	SellIn  int
	Quality int
}

// Overdue reports whether the sale deadline has passed
func (s State) Overdue() bool {
	return s.SellIn < 0
}
