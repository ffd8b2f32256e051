package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite provides a test suite for configuration loading
type ConfigTestSuite struct {
	suite.Suite
}

// TestDefaults tests loading without a config file
func (suite *ConfigTestSuite) TestDefaults() {
	suite.Run("MissingFile_ShouldFallBackToDefaults", func() {
		// Act
		cfg, err := Load("")

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Brewsmith", cfg.App.Name)
		assert.Equal(suite.T(), 8080, cfg.Server.Port)
		assert.Equal(suite.T(), 15*time.Second, cfg.Server.ReadTimeout)
		assert.False(suite.T(), cfg.Catalog.EnableCache)
		assert.True(suite.T(), cfg.Monitoring.EnableMetrics)
	})

	suite.Run("DefaultEnvironment_ShouldBeDevelopment", func() {
		cfg, err := Load("")

		require.NoError(suite.T(), err)
		assert.True(suite.T(), cfg.IsDevelopment())
	})

	suite.Run("ProductionEnvironment_ShouldNotReadAsDevelopment", func() {
		cfg := &Config{App: AppConfig{Environment: "production"}}

		assert.False(suite.T(), cfg.IsDevelopment())
	})
}

// TestValidation tests the post-load sanity checks
func (suite *ConfigTestSuite) TestValidation() {
	valid := func() *Config {
		return &Config{
			App:    AppConfig{Name: "Brewsmith"},
			Server: ServerConfig{Port: 8080},
		}
	}

	suite.Run("ValidConfig_ShouldPass", func() {
		assert.NoError(suite.T(), valid().Validate())
	})

	suite.Run("MissingAppName_ShouldFail", func() {
		cfg := valid()
		cfg.App.Name = ""

		assert.Error(suite.T(), cfg.Validate())
	})

	suite.Run("PortOutOfRange_ShouldFail", func() {
		cfg := valid()
		cfg.Server.Port = 70000

		assert.Error(suite.T(), cfg.Validate())
	})

	suite.Run("CacheEnabledWithoutTTL_ShouldFail", func() {
		cfg := valid()
		cfg.Catalog.EnableCache = true
		cfg.Catalog.CacheTTL = 0

		assert.Error(suite.T(), cfg.Validate())
	})
}

// TestAddresses tests derived address helpers
func (suite *ConfigTestSuite) TestAddresses() {
	suite.Run("RedisAddr_ShouldJoinHostAndPort", func() {
		cfg := &Config{Redis: RedisConfig{Host: "cache.internal", Port: 6380}}

		assert.Equal(suite.T(), "cache.internal:6380", cfg.RedisAddr())
	})
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
