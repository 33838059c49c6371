package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotech/contactform/pkg/config"
)

type contactConfig struct {
	Inbox string        `env:"CFGTEST_INBOX,required"`
	Delay time.Duration `env:"CFGTEST_DELAY" envDefault:"600ms"`
	Name  string        `env:"CFGTEST_NAME" envDefault:"ecotech"`
}

type cachedConfig struct {
	Value string `env:"CFGTEST_CACHED" envDefault:"first"`
}

func TestParseFrom(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var cfg contactConfig
		require.NoError(t, config.ParseFrom(&cfg, map[string]string{"CFGTEST_INBOX": "a@b.c"}))
		assert.Equal(t, "a@b.c", cfg.Inbox)
		assert.Equal(t, 600*time.Millisecond, cfg.Delay)
		assert.Equal(t, "ecotech", cfg.Name)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		var cfg contactConfig
		assert.ErrorIs(t, config.ParseFrom(&cfg, map[string]string{}), config.ErrParsingConfig)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Parallel()
		var cfg contactConfig
		err := config.ParseFrom(&cfg, map[string]string{"CFGTEST_INBOX": "a@b.c", "CFGTEST_DELAY": "soon"})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, config.ParseFrom[contactConfig](nil, nil), config.ErrNilPointer)
		assert.ErrorIs(t, config.Load[contactConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CFGTEST_NAME", "from process")

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg contactConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "contato@ecotech.dev", cfg.Inbox)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	assert.Equal(t, "from process", cfg.Name, "existing variables win")

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
	assert.NoError(t, config.LoadEnv())
}

func TestLoad_Caches(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("CFGTEST_CACHED", "first")
	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	t.Setenv("CFGTEST_CACHED", "second")
	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)

	config.ResetCache()
	var c cachedConfig
	require.NoError(t, config.Load(&c))
	assert.Equal(t, "second", c.Value)
}
