package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesbalchiero/insidechurch/pkg/config"
)

type clientConfig struct {
	BaseURL string        `env:"TEST_API_URL,required"`
	Timeout time.Duration `env:"TEST_HTTP_TIMEOUT" envDefault:"15s"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env with defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_API_URL", "https://api.example.com")

		var cfg clientConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_API_URL", "https://one.example.com")

		var first clientConfig
		require.NoError(t, config.Load(&first))

		// A changed environment is not observed until Reset.
		t.Setenv("TEST_API_URL", "https://two.example.com")
		var second clientConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "https://one.example.com", second.BaseURL)

		config.Reset()
		var third clientConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "https://two.example.com", third.BaseURL)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		config.Reset()

		var cfg clientConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[clientConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
