package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Aging Metrics
var (
	AdvanceRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAdvanceRuns,
			Help: HelpTextAdvanceRuns,
		},
	)

	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	ItemsAdvanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdvanced,
			Help: HelpTextItemsAdvanced,
		},
		[]string{LabelCategory},
	)

	QualityGained = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQualityGained,
			Help: HelpTextQualityGained,
		},
		[]string{LabelCategory},
	)

	QualityLost = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQualityLost,
			Help: HelpTextQualityLost,
		},
		[]string{LabelCategory},
	)

	InvariantViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInvariantViolations,
			Help: HelpTextInvariantViolations,
		},
		[]string{LabelCategory},
	)

	ItemsTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameItemsTracked,
			Help: HelpTextItemsTracked,
		},
	)
)

// Recorder feeds inventory activity into the package metrics
type Recorder struct{}

// NewRecorder creates a new Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordRun counts one advance run over days
func (r *Recorder) RecordRun(days int) {
	AdvanceRuns.Inc()
	DaysAdvanced.Add(float64(days))
}

// RecordAdvance counts one item advance and its quality change
func (r *Recorder) RecordAdvance(category string, qualityDelta int) {
	ItemsAdvanced.WithLabelValues(category).Inc()
	switch {
	case qualityDelta > 0:
		QualityGained.WithLabelValues(category).Add(float64(qualityDelta))
	case qualityDelta < 0:
		QualityLost.WithLabelValues(category).Add(float64(-qualityDelta))
	}
}

// RecordViolation counts an item that broke its category bounds
func (r *Recorder) RecordViolation(category string) {
	InvariantViolations.WithLabelValues(category).Inc()
}

// SetTracked reports the size of the tracked collection
func (r *Recorder) SetTracked(n int) {
	ItemsTracked.Set(float64(n))
}

// WriteTextfile dumps the default registry in the node-exporter textfile format
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
