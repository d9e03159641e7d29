package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load Metrics
var (
	DefinitionsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDefinitionsLoaded,
			Help: HelpTextDefinitionsLoaded,
		},
		[]string{LabelKind},
	)

	LoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoadErrors,
			Help: HelpTextLoadErrors,
		},
		[]string{LabelKind, LabelErrorKind},
	)

	LoadWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLoadWarnings,
			Help: HelpTextLoadWarnings,
		},
	)

	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLoadDuration,
			Help:    HelpTextLoadDuration,
			Buckets: LoadLatencyBuckets,
		},
	)
)

// Consumption Metrics
var (
	BeveragesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBeveragesConsumed,
			Help: HelpTextBeveragesConsumed,
		},
		[]string{LabelBeverage},
	)

	EffectsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEffectsApplied,
			Help: HelpTextEffectsApplied,
		},
		[]string{LabelEffect},
	)
)
