package loader

// ==================== Content Files ====================

// ContentExt is the extension of content documents
const ContentExt = ".json"

// ==================== Error Messages ====================

// File error details
const (
	ErrFmtReadFailed = "failed to read file: %v"
)

// ==================== Warnings ====================

const (
	WarnFmtRootUnreadable    = "content root %s is not readable: %v; the catalog is empty"
	WarnFmtRootNotDir        = "content root %s is not a directory; the catalog is empty"
	WarnFmtWalkFailed        = "failed to scan %s: %v"
	WarnFmtCancelled         = "load cancelled after %d files: %v"
	WarnFmtUnresolved        = "beverage %s references unknown container %s"
	WarnFmtSchemaUnavailable = "shape validation unavailable: %v"
)

// ==================== Log Messages ====================

const (
	LogMsgLoadStarted    = "Content load started"
	LogMsgLoadCompleted  = "Content load completed"
	LogMsgFileRejected   = "Content document rejected"
	LogMsgFileLoaded     = "Content document loaded"
	LogMsgLoadWarning    = "Content load warning"
	LogMsgKindDirMissing = "Content directory missing, skipped"
)
