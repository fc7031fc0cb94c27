package rename

// ============================================================================
// Settings values
// ============================================================================

const (
	OnExistingSkip   = "skip"
	OnExistingRename = "rename"

	sidecarSeparator = ";"
	appendMarker     = "+"
	suffixSeparator  = "_"

	// DefaultParamFileExt is the extension of the processing-parameters file
	DefaultParamFileExt = "arp"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgBatchStarted   = "Batch started"
	LogMsgBatchFinished  = "Batch finished"
	LogMsgBatchCancelled = "Batch cancelled"
	LogMsgItemFailed     = "File operation failed"
	LogMsgItemSkipped    = "Destination exists, item skipped"
	LogMsgCatalogUpdate  = "Catalog update failed"
	LogMsgMetadataFailed = "Could not read metadata"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgOperationFailed = "cannot %s %s to %s"
	ErrMsgDeleteFailed    = "cannot delete %s"
	ErrMsgIsDirectory     = "is a directory"
)
