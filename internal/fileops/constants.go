package fileops

import "os"

// DirPerm is the mode for directories created on demand.
const DirPerm os.FileMode = 0o755

// Operation labels
const (
	OpMove   = "move"
	OpCopy   = "copy"
	OpRemove = "remove"
	OpMkdir  = "mkdir"
)

const LogMsgCrossDeviceFallback = "Cross-device rename, falling back to copy"
