package validation

// Schema compilation errors
const (
	ErrFmtUnknownKind         = "unknown document kind %q"
	ErrFmtReflectSchemaFailed = "failed to reflect schema for %s"
	ErrFmtParseSchemaFailed   = "failed to parse schema for %s: %v"
	ErrFmtAddSchemaFailed     = "failed to add schema resource for %s: %w"
	ErrFmtCompileSchemaFailed = "failed to compile schema for %s: %w"
)

// Content validation messages
const (
	ErrMsgFieldRequired     = "field is required"
	ErrMsgNoEffects         = "beverage must declare at least one effect"
	ErrFmtRangeViolation    = "value %v violates %s"
	ErrFmtRangeViolationArg = "value %v violates %s=%s"
	ErrFmtUnknownEffect     = "effect %s is not registered"
	ErrFmtDidYouMean        = "%s (did you mean %s?)"
)

// Reference suggestion distances by id path length
const (
	SuggestShortPath   = 4
	SuggestMediumPath  = 8
	SuggestShortLimit  = 1
	SuggestMediumLimit = 2
	SuggestLongLimit   = 3
)
