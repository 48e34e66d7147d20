package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordAdvance(t *testing.T) {
	r := NewRecorder()
	const category = "test_record_advance"

	beforeItems := testutil.ToFloat64(ItemsAdvanced.WithLabelValues(category))
	beforeGained := testutil.ToFloat64(QualityGained.WithLabelValues(category))
	beforeLost := testutil.ToFloat64(QualityLost.WithLabelValues(category))

	r.RecordAdvance(category, 3)
	r.RecordAdvance(category, -2)
	r.RecordAdvance(category, 0)

	assert.Equal(t, beforeItems+3, testutil.ToFloat64(ItemsAdvanced.WithLabelValues(category)))
	assert.Equal(t, beforeGained+3, testutil.ToFloat64(QualityGained.WithLabelValues(category)))
	assert.Equal(t, beforeLost+2, testutil.ToFloat64(QualityLost.WithLabelValues(category)))
}

func TestRecorder_RunsAndViolations(t *testing.T) {
	r := NewRecorder()

	runs := testutil.ToFloat64(AdvanceRuns)
	days := testutil.ToFloat64(DaysAdvanced)
	violations := testutil.ToFloat64(InvariantViolations.WithLabelValues("fixed_value"))

	r.RecordRun(5)
	r.RecordViolation("fixed_value")
	r.SetTracked(7)

	assert.Equal(t, runs+1, testutil.ToFloat64(AdvanceRuns))
	assert.Equal(t, days+5, testutil.ToFloat64(DaysAdvanced))
	assert.Equal(t, violations+1, testutil.ToFloat64(InvariantViolations.WithLabelValues("fixed_value")))
	assert.Equal(t, float64(7), testutil.ToFloat64(ItemsTracked))
}

func TestWriteTextfile(t *testing.T) {
	NewRecorder().RecordRun(1)
	path := filepath.Join(t.TempDir(), "gildedtros.prom")

	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), MetricNameAdvanceRuns)
}
