package effects

// Log messages
const (
	LogMsgUnknownBeverage  = "Consume ignored: unknown beverage"
	LogMsgDisabledBeverage = "Consume ignored: beverage disabled"
	LogMsgConsumed         = "Beverage consumed"
)

// Registry errors
const (
	ErrFmtReadRegistry   = "failed to read effect registry %s: %w"
	ErrFmtDecodeRegistry = "failed to decode effect registry %s: %w"
	ErrFmtRegistryEntry  = "effect registry %s entry %d: %w"
)
