package domain

import (
	"fmt"
	"strings"
)

// Category selects the aging rule an item follows. It is derived from the
// item name, never stored on the item itself.
type Category int

const (
	// CategoryUnassigned is the zero value; items in this state cannot be advanced
	CategoryUnassigned Category = iota
	CategoryRegular
	CategoryAppreciating
	CategoryFixedValue
	CategoryTimeLimited
	CategoryFastDegrading
)

var categoryNames = map[Category]string{
	CategoryUnassigned:    "unassigned",
	CategoryRegular:       "regular",
	CategoryAppreciating:  "appreciating",
	CategoryFixedValue:    "fixed_value",
	CategoryTimeLimited:   "time_limited",
	CategoryFastDegrading: "fast_degrading",
}

// Categories lists every assignable category in declaration order
func Categories() []Category {
	return []Category{
		CategoryRegular,
		CategoryAppreciating,
		CategoryFixedValue,
		CategoryTimeLimited,
		CategoryFastDegrading,
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid reports whether c is one of the assignable categories
func (c Category) Valid() bool {
	return c > CategoryUnassigned && c <= CategoryFastDegrading
}

// QualityBounds returns the inclusive range an item of this category must
// satisfy when it is assigned.
func (c Category) QualityBounds() (lower, upper int) {
	if c == CategoryFixedValue {
		return FixedQuality, FixedQuality
	}
	return QualityLowerBound, QualityUpperBound
}

// ParseCategory maps a catalog category name onto a Category
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if c != CategoryUnassigned && n == key {
			return c, nil
		}
	}
	return CategoryUnassigned, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
