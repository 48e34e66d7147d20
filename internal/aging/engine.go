package aging

import (
	"fmt"

	"github.com/osse101/GildedTros_Go/internal/domain"
)

// Rule advances one item's state by a number of days. Rules never see days < 1.
type Rule func(s domain.State, days int) domain.State

// Engine provides pure aging logic (no item ownership, no I/O)
type Engine struct {
	rules      map[domain.Category]Rule
	thresholds Thresholds
}

// NewEngine creates a new aging engine with the standard rule set
func NewEngine() *Engine {
	e := &Engine{thresholds: getTimeLimitedThresholds()}
	e.rules = map[domain.Category]Rule{
		domain.CategoryRegular:       degrading(domain.DeteriorationRate),
		domain.CategoryFastDegrading: degrading(domain.FastDeteriorationRate),
		domain.CategoryAppreciating:  appreciating,
		domain.CategoryFixedValue:    fixedValue,
		domain.CategoryTimeLimited:   e.timeLimited,
	}
	return e
}

// Age returns the state of an item of category c after days have elapsed.
// Zero days is the identity.
func (e *Engine) Age(c domain.Category, s domain.State, days int) (domain.State, error) {
	if days < 0 {
		return s, fmt.Errorf("%w: days must be >= 0, got %d", domain.ErrInvalidArgument, days)
	}
	rule, ok := e.rules[c]
	if !ok {
		if c == domain.CategoryUnassigned {
			return s, domain.ErrCategoryNotAssigned
		}
		return s, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, c)
	}
	if days == 0 {
		return s, nil
	}
	return rule(s, days), nil
}

// Thresholds exposes the time-limited appreciation table
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// degrading loses rate points per day, doubled for every day that starts at
// or after the deadline. Quality never drops below the lower bound.
func degrading(rate int) Rule {
	return func(s domain.State, days int) domain.State {
		overdue := overdueDays(s.SellIn, days)
		normal := days - overdue
		reduction := normal*rate + overdue*rate*domain.OverdueFactor
		return domain.State{
			SellIn:  s.SellIn - days,
			Quality: max(domain.QualityLowerBound, s.Quality-reduction),
		}
	}
}

// overdueDays counts the days of a batch that end with sell-in below zero
func overdueDays(sellIn, days int) int {
	return min(days, max(0, days-sellIn))
}

func appreciating(s domain.State, days int) domain.State {
	return domain.State{
		SellIn:  s.SellIn - days,
		Quality: min(domain.QualityUpperBound, s.Quality+domain.AppreciationRate*days),
	}
}

func fixedValue(s domain.State, days int) domain.State {
	return domain.State{SellIn: s.SellIn - days, Quality: s.Quality}
}

// timeLimited steps day by day because the rate changes at fixed distances
// from the deadline and the cap is applied after every step.
func (e *Engine) timeLimited(s domain.State, days int) domain.State {
	next := domain.State{SellIn: s.SellIn - days}
	if next.Overdue() {
		next.Quality = domain.QualityLowerBound
		return next
	}

	quality := s.Quality
	for d := 1; d <= days; d++ {
		daysLeft := s.SellIn - d + 1
		quality = min(domain.QualityUpperBound, quality+e.thresholds.RateFor(daysLeft))
	}
	next.Quality = quality
	return next
}
