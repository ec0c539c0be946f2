package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigrade/submit-api/pkg/config"
)

type testConfig struct {
	Addr     string `env:"TEST_ADDR" envDefault:":8080"`
	APIToken string `env:"TEST_API_TOKEN,required"`
	Debug    bool   `env:"TEST_DEBUG" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Run("reads values and defaults", func(t *testing.T) {
		t.Setenv("TEST_API_TOKEN", "secret")
		t.Setenv("TEST_DEBUG", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "secret", cfg.APIToken)
		assert.True(t, cfg.Debug)
	})

	t.Run("missing required variable", func(t *testing.T) {
		t.Setenv("TEST_API_TOKEN", "")

		var cfg struct {
			Token string `env:"TEST_MISSING_TOKEN,required"`
		}
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var cfg struct {
			Token string `env:"TEST_ANOTHER_MISSING_TOKEN,required"`
		}
		config.MustLoad(&cfg)
	})
}
