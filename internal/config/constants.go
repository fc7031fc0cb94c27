package config

// Environment variable names
const (
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvInspectorBuffers = "INSPECTOR_BUFFERS"
	EnvRenameSettings   = "RENAME_SETTINGS"
	EnvCatalogDB        = "CATALOG_DB"
	EnvParamFileExt     = "PARAM_FILE_EXT"
	EnvExiftool         = "EXIFTOOL"
	EnvMetricsAddr      = "METRICS_ADDR"
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "filecatalog"
	DefaultVersion          = "dev"
	DefaultInspectorBuffers = 4
	DefaultParamFileExt     = "arp"
	DefaultExiftool         = "exiftool"

	// Relative to the user config directory
	ConfigDirName           = "filecatalog"
	DefaultSettingsFileName = "rename.yaml"
	DefaultCatalogFileName  = "catalog.sqlite"
)
