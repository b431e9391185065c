package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.CSV.Delimiter = ","
	config.CSV.IncludeHeaders = true
	config.AI.Model = "gemini-2.0-flash"
	config.Categorization.CategoriesFile = "categories.yaml"
	config.Categorization.LargePaymentThreshold = 10000
	return config
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfig_InvalidLogLevel(t *testing.T) {
	config := validTestConfig()
	config.Log.Level = "verbose"

	err := validateConfig(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestValidateConfig_InvalidLogFormat(t *testing.T) {
	config := validTestConfig()
	config.Log.Format = "xml"

	err := validateConfig(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestValidateConfig_InvalidDelimiter(t *testing.T) {
	config := validTestConfig()
	config.CSV.Delimiter = ";;"

	err := validateConfig(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delimiter")
}

func TestValidateConfig_AIEnabledWithoutKey(t *testing.T) {
	config := validTestConfig()
	config.AI.Enabled = true
	config.AI.APIKey = ""

	err := validateConfig(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	config.AI.APIKey = "test-key"
	assert.NoError(t, validateConfig(config))
}

func TestValidateConfig_NegativeThreshold(t *testing.T) {
	config := validTestConfig()
	config.Categorization.LargePaymentThreshold = -1

	err := validateConfig(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "large_payment_threshold")
}

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from a temp dir so a developer's local config.yaml is not picked up.
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, "categories.yaml", config.Categorization.CategoriesFile)
	assert.Equal(t, float64(10000), config.Categorization.LargePaymentThreshold)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := validTestConfig()
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
