package aging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedTros_Go/internal/domain"
)

func st(sellIn, quality int) domain.State {
	return domain.State{SellIn: sellIn, Quality: quality}
}

// ageDaily applies n single-day steps
func ageDaily(t *testing.T, e *Engine, c domain.Category, s domain.State, n int) domain.State {
	t.Helper()
	for i := 0; i < n; i++ {
		var err error
		s, err = e.Age(c, s, 1)
		require.NoError(t, err)
	}
	return s
}

func TestAge_Regular(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name  string
		start domain.State
		days  int
		want  domain.State
	}{
		{"one day", st(30, 45), 1, st(29, 44)},
		{"last day before deadline", st(1, 10), 1, st(0, 9)},
		{"deadline day degrades twice", st(0, 10), 1, st(-1, 8)},
		{"batch crossing deadline", st(2, 10), 5, st(-3, 2)},
		{"batch already overdue", st(-3, 10), 2, st(-5, 6)},
		{"floor at zero", st(1, 1), 3, st(-2, 0)},
		{"zero stays zero", st(5, 0), 4, st(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Age(domain.CategoryRegular, tt.start, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAge_RegularDeskScenario(t *testing.T) {
	engine := NewEngine()
	s := st(30, 45)

	s = ageDaily(t, engine, domain.CategoryRegular, s, 15)
	assert.Equal(t, st(15, 30), s)

	s = ageDaily(t, engine, domain.CategoryRegular, s, 15)
	assert.Equal(t, st(0, 15), s)

	// First overdue day costs OverdueFactor points
	s = ageDaily(t, engine, domain.CategoryRegular, s, 1)
	assert.Equal(t, st(-1, 13), s)

	s = ageDaily(t, engine, domain.CategoryRegular, s, 45)
	assert.Equal(t, 0, s.Quality)
}

func TestAge_FastDegrading(t *testing.T) {
	engine := NewEngine()
	s := st(8, 50)

	s = ageDaily(t, engine, domain.CategoryFastDegrading, s, 4)
	assert.Equal(t, st(4, 42), s)

	s = ageDaily(t, engine, domain.CategoryFastDegrading, s, 4)
	assert.Equal(t, st(0, 34), s)

	s = ageDaily(t, engine, domain.CategoryFastDegrading, s, 4)
	assert.Equal(t, st(-4, 18), s)

	got, err := engine.Age(domain.CategoryFastDegrading, st(8, 50), 50)
	require.NoError(t, err)
	assert.Equal(t, st(-42, 0), got)
}

func TestAge_Appreciating(t *testing.T) {
	engine := NewEngine()

	got := ageDaily(t, engine, domain.CategoryAppreciating, st(30, 45), 5)
	assert.Equal(t, st(25, 50), got)

	got = ageDaily(t, engine, domain.CategoryAppreciating, got, 1)
	assert.Equal(t, st(24, 50), got, "capped at the upper bound")

	got, err := engine.Age(domain.CategoryAppreciating, st(-5, 10), 3)
	require.NoError(t, err)
	assert.Equal(t, st(-8, 13), got, "no overdue acceleration")
}

func TestAge_FixedValue(t *testing.T) {
	engine := NewEngine()

	got := ageDaily(t, engine, domain.CategoryFixedValue, st(0, domain.FixedQuality), 100)
	assert.Equal(t, st(-100, domain.FixedQuality), got)
}

func TestAge_TimeLimited(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name  string
		start domain.State
		days  int
		want  domain.State
	}{
		{"eleven days out earns base rate", st(11, 1), 1, st(10, 2)},
		{"ten days out earns double", st(10, 1), 1, st(9, 3)},
		{"six days out earns double", st(6, 1), 1, st(5, 3)},
		{"five days out earns triple", st(5, 1), 1, st(4, 4)},
		{"last day earns triple", st(1, 1), 1, st(0, 4)},
		{"deadline passes", st(0, 20), 1, st(-1, 0)},
		{"batch past deadline", st(10, 2), 11, st(-1, 0)},
		{"batch across tiers", st(11, 20), 5, st(6, 29)},
		{"cap inside a batch", st(5, 49), 2, st(3, 50)},
		{"cap on a single day", st(10, 49), 1, st(9, 50)},
		{"already overdue stays zero", st(-4, 0), 3, st(-7, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Age(domain.CategoryTimeLimited, tt.start, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAge_TimeLimitedFullRun(t *testing.T) {
	engine := NewEngine()
	s := st(30, 1)

	s = ageDaily(t, engine, domain.CategoryTimeLimited, s, 19)
	assert.Equal(t, st(11, 20), s)

	s = ageDaily(t, engine, domain.CategoryTimeLimited, s, 5)
	assert.Equal(t, st(6, 29), s)

	s = ageDaily(t, engine, domain.CategoryTimeLimited, s, 5)
	assert.Equal(t, st(1, 43), s)

	s = ageDaily(t, engine, domain.CategoryTimeLimited, s, 1)
	assert.Equal(t, st(0, 46), s)

	s = ageDaily(t, engine, domain.CategoryTimeLimited, s, 1)
	assert.Equal(t, st(-1, 0), s)

	batch, err := engine.Age(domain.CategoryTimeLimited, st(30, 1), 30)
	require.NoError(t, err)
	assert.Equal(t, st(0, 46), batch)
}

func TestAge_ZeroDaysIsIdentity(t *testing.T) {
	engine := NewEngine()
	for _, c := range domain.Categories() {
		t.Run(c.String(), func(t *testing.T) {
			start := st(-2, 7)
			if c == domain.CategoryFixedValue {
				start.Quality = domain.FixedQuality
			}
			got, err := engine.Age(c, start, 0)
			require.NoError(t, err)
			assert.Equal(t, start, got)
		})
	}
}

func TestAge_Errors(t *testing.T) {
	engine := NewEngine()

	t.Run("negative days", func(t *testing.T) {
		start := st(5, 10)
		got, err := engine.Age(domain.CategoryRegular, start, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Equal(t, start, got)
	})

	t.Run("unassigned category", func(t *testing.T) {
		_, err := engine.Age(domain.CategoryUnassigned, st(5, 10), 1)
		assert.ErrorIs(t, err, domain.ErrCategoryNotAssigned)
		assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := engine.Age(domain.Category(99), st(5, 10), 1)
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})
}

func TestThresholds_RateFor(t *testing.T) {
	thresholds := NewEngine().Thresholds()

	tests := []struct {
		daysLeft int
		want     int
	}{
		{30, 1},
		{11, 1},
		{10, 2},
		{6, 2},
		{5, 3},
		{1, 3},
		{0, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, thresholds.RateFor(tt.daysLeft), "days left %d", tt.daysLeft)
	}
}

// startStates returns valid starting states for category c
func startStates(c domain.Category) []domain.State {
	qualities := []int{0, 1, 10, 45, 49, 50}
	if c == domain.CategoryFixedValue {
		qualities = []int{domain.FixedQuality}
	}
	var states []domain.State
	for sellIn := -3; sellIn <= 14; sellIn++ {
		for _, q := range qualities {
			states = append(states, st(sellIn, q))
		}
	}
	return states
}

func TestAge_BatchEquivalence(t *testing.T) {
	engine := NewEngine()

	for _, c := range domain.Categories() {
		t.Run(c.String(), func(t *testing.T) {
			for _, start := range startStates(c) {
				for k := 0; k <= 12; k++ {
					for m := 0; m <= 12; m++ {
						first, err := engine.Age(c, start, k)
						require.NoError(t, err)
						split, err := engine.Age(c, first, m)
						require.NoError(t, err)

						whole, err := engine.Age(c, start, k+m)
						require.NoError(t, err)

						if !assert.Equal(t, whole, split, "start=%+v k=%d m=%d", start, k, m) {
							return
						}
					}
				}
			}
		})
	}
}

func TestAge_QualityProperties(t *testing.T) {
	engine := NewEngine()

	for _, c := range domain.Categories() {
		t.Run(c.String(), func(t *testing.T) {
			for _, start := range startStates(c) {
				s := start
				for day := 0; day < 60; day++ {
					next, err := engine.Age(c, s, 1)
					require.NoError(t, err)
					assert.Equal(t, s.SellIn-1, next.SellIn)

					switch c {
					case domain.CategoryRegular, domain.CategoryFastDegrading:
						assert.LessOrEqual(t, next.Quality, s.Quality)
						assert.GreaterOrEqual(t, next.Quality, domain.QualityLowerBound)
					case domain.CategoryAppreciating:
						assert.GreaterOrEqual(t, next.Quality, s.Quality)
						assert.LessOrEqual(t, next.Quality, domain.QualityUpperBound)
					case domain.CategoryFixedValue:
						assert.Equal(t, domain.FixedQuality, next.Quality)
					case domain.CategoryTimeLimited:
						if next.Overdue() {
							assert.Equal(t, 0, next.Quality)
						} else {
							assert.LessOrEqual(t, next.Quality, domain.QualityUpperBound)
						}
					}
					s = next
				}
			}
		})
	}
}
