package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_OK(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_MissingExiftool(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvExiftool, "definitely-not-an-installed-binary")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "definitely-not-an-installed-binary")
}

func TestValidateEnvWithWarnings_TextLogsInProd(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvEnvironment, "prod")
	t.Setenv(EnvLogFormat, "text")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)

	found := false
	for _, w := range warnings {
		if assert.ObjectsAreEqual("LOG_FORMAT=text in prod - json is recommended for log shipping", w) {
			found = true
		}
	}
	assert.True(t, found, "expected prod log format warning, got %v", warnings)
}

func TestValidateEnvWithWarnings_PropagatesError(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")

	warnings, err := ValidateEnvWithWarnings()
	assert.Error(t, err)
	assert.Nil(t, warnings)
}
