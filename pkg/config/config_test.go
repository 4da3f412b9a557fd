package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdeskhq/helpdesk-go/pkg/config"
)

type testConfig struct {
	BaseURL string        `env:"CONFIG_TEST_BASE_URL" envDefault:"http://localhost:5000/api"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"30s"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CONFIG_TEST_BASE_URL", "https://support.example.com/api")
	t.Setenv("CONFIG_TEST_TIMEOUT", "5s")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://support.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_NilTarget(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CONFIG_TEST_TIMEOUT", "not-a-duration")

	var cfg testConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParse)
}
