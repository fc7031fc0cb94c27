package settings

// Defaults of a fresh settings document
const (
	DefaultPattern           = "%f.%e"
	DefaultNorm              = "off"
	DefaultOnExisting        = "skip"
	DefaultProgressiveNumber = 1

	currentDir = "."
	schemaName = "rename.schema.json"
	filePerm   = 0o644
	dirPerm    = 0o755
)

// Log messages
const (
	LogMsgSettingsMissing = "Rename settings not found, using defaults"
	LogMsgSettingsSaved   = "Rename settings saved"
	LogMsgBaseDirMissing  = "Base directory does not exist, using source directories"
)
