package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"curator/internal/domain/constants"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Storage: &StorageConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Token.RefreshTTL)
	assert.Equal(t, defaultMaxImageSize, cfg.Storage.MaxImageSize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Store.Driver = constants.StoreDriverMemory
	cfg.Token.AccessTTL = time.Minute

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, time.Minute, cfg.Token.AccessTTL)
	assert.Nil(t, cfg.Storage)
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("RATELIMIT_REQUESTSPERMINUTE", "42")
	t.Setenv("QRCODE_BASEURL", "https://curator.example")

	cfg, err := LoadWithEnv[Config]("config")
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, constants.StoreDriverMemory, cfg.Store.Driver)
	if assert.NotNil(t, cfg.RateLimit) {
		assert.Equal(t, 42, cfg.RateLimit.RequestsPerMinute)
	}
	if assert.NotNil(t, cfg.QRCode) {
		assert.Equal(t, "https://curator.example", cfg.QRCode.BaseURL)
	}
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
}
