package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Aging metric names
const (
	MetricNameAdvanceRuns         = "gildedtros_advance_runs_total"
	MetricNameDaysAdvanced        = "gildedtros_days_advanced_total"
	MetricNameItemsAdvanced       = "gildedtros_items_advanced_total"
	MetricNameQualityGained       = "gildedtros_quality_gained_total"
	MetricNameQualityLost         = "gildedtros_quality_lost_total"
	MetricNameInvariantViolations = "gildedtros_invariant_violations_total"
	MetricNameItemsTracked        = "gildedtros_items_tracked"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextAdvanceRuns         = "Total number of inventory advance runs"
	HelpTextDaysAdvanced        = "Total number of days the inventory has been advanced"
	HelpTextItemsAdvanced       = "Total number of item advances by category"
	HelpTextQualityGained       = "Total quality points gained by category"
	HelpTextQualityLost         = "Total quality points lost by category"
	HelpTextInvariantViolations = "Items rejected or flagged for breaking their category bounds"
	HelpTextItemsTracked        = "Current number of tracked items"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelCategory = "category"
)
