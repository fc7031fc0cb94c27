package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// InspectorBuffers is the preview cache capacity
	InspectorBuffers int

	RenameSettings string
	CatalogDB      string
	ParamFileExt   string
	Exiftool       string
	MetricsAddr    string // empty disables the metrics listener
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	dir := defaultConfigDir()

	cfg := &Config{
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		RenameSettings: getEnv(EnvRenameSettings, filepath.Join(dir, DefaultSettingsFileName)),
		CatalogDB:      getEnv(EnvCatalogDB, filepath.Join(dir, DefaultCatalogFileName)),
		ParamFileExt:   getEnv(EnvParamFileExt, DefaultParamFileExt),
		Exiftool:       getEnv(EnvExiftool, DefaultExiftool),
		MetricsAddr:    getEnv(EnvMetricsAddr, ""),
	}

	buffersStr := getEnv(EnvInspectorBuffers, strconv.Itoa(DefaultInspectorBuffers))
	buffers, err := strconv.Atoi(buffersStr)
	if err != nil {
		return nil, fmt.Errorf("invalid INSPECTOR_BUFFERS value: %w", err)
	}
	if buffers < 1 {
		return nil, fmt.Errorf("invalid INSPECTOR_BUFFERS value: must be at least 1, got %d", buffers)
	}
	cfg.InspectorBuffers = buffers

	if cfg.ParamFileExt == "" {
		return nil, fmt.Errorf("PARAM_FILE_EXT must not be empty")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, ConfigDirName)
	}
	return "."
}
