package config

// Environment variable names
const (
	EnvContentRoot = "ALCHEMY_CONTENT_ROOT"
	EnvEffectsFile = "ALCHEMY_EFFECTS_FILE"
	EnvSeed        = "ALCHEMY_SEED"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvLogSource   = "LOG_ADD_SOURCE"
	EnvEnvironment = "ENVIRONMENT"
)

// Error messages
const (
	ErrFmtParseEnv        = "parse env: %w"
	ErrFmtInvalidFormat   = "invalid %s %q: must be json or text"
	ErrFmtInvalidLevel    = "invalid %s %q: must be debug, info, warn or error"
	ErrMsgEmptyRoot       = "content root must not be empty"
	WarnFmtMissingRoot    = "content root %s does not exist; the catalog will be empty"
	WarnFmtMissingEffects = "effects file %s does not exist; vanilla effects will be used"
)
