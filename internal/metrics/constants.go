package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Load metric names
const (
	MetricNameDefinitionsLoaded = "alchemy_definitions_loaded_total"
	MetricNameLoadErrors        = "alchemy_load_errors_total"
	MetricNameLoadWarnings      = "alchemy_load_warnings_total"
	MetricNameLoadDuration      = "alchemy_load_duration_seconds"
)

// Consumption metric names
const (
	MetricNameBeveragesConsumed = "alchemy_beverages_consumed_total"
	MetricNameEffectsApplied    = "alchemy_effects_applied_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Load metric help text
const (
	HelpTextDefinitionsLoaded = "Content documents parsed and validated, by kind"
	HelpTextLoadErrors        = "Content documents rejected, by kind and error kind"
	HelpTextLoadWarnings      = "Non-fatal load warnings"
	HelpTextLoadDuration      = "Content load duration in seconds"
)

// Consumption metric help text
const (
	HelpTextBeveragesConsumed = "Beverages consumed through the host entry point"
	HelpTextEffectsApplied    = "Effect entries that fired on consumption, by effect"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelKind      = "kind"
	LabelErrorKind = "error_kind"
	LabelBeverage  = "beverage"
	LabelEffect    = "effect"
)

// ============================================================================
// Buckets
// ============================================================================

// LoadLatencyBuckets covers loads from a handful of files to large packs
var LoadLatencyBuckets = []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5}
