package aging

import "github.com/osse101/GildedTros_Go/internal/domain"

// Threshold sets the daily appreciation of a time-limited item once the
// deadline is at most DaysLeft days away. DaysLeft counts from the start of
// the day being simulated, before that day's sell-in decrement.
type Threshold struct {
	DaysLeft int
	Rate     int
}

// Thresholds is ordered by DaysLeft ascending so the first match is the
// tightest boundary.
type Thresholds []Threshold

// getTimeLimitedThresholds returns the appreciation table for time-limited items.
// More than 10 days out the base rate applies.
func getTimeLimitedThresholds() Thresholds {
	return Thresholds{
		// 1..5 days left: +3/day
		{DaysLeft: 5, Rate: 3 * domain.AppreciationRate},
		// 6..10 days left: +2/day
		{DaysLeft: 10, Rate: 2 * domain.AppreciationRate},
	}
}

// RateFor returns the rate of the smallest boundary that still covers daysLeft,
// or the base rate when daysLeft is beyond every boundary.
func (t Thresholds) RateFor(daysLeft int) int {
	for _, th := range t {
		if daysLeft <= th.DaysLeft {
			return th.Rate
		}
	}
	return domain.AppreciationRate
}
