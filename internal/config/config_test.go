package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/internal/config"
	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

func isolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(ifpa.EnvAPIKey, "")

	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := config.Load(config.NewViper(""))
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, ifpa.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, ifpa.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, constants.FormatTable, cfg.Output)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ifpa.CacheTypeNone, cfg.Cache.Type)
}

func TestLoad_Environment(t *testing.T) {
	isolateHome(t)
	t.Setenv("IFPA_API_KEY", "env-key")
	t.Setenv("IFPA_OUTPUT", "json")
	t.Setenv("IFPA_LOGGING_LEVEL", "debug")

	cfg, err := config.Load(config.NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, constants.FormatJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_File(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "ifpa.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_key: file-key
base_url: https://staging.example.com/
timeout: 30s
output: yaml
cache:
  type: memory
  max_size: 50
`), 0o600))

	cfg, err := config.Load(config.NewViper(path))
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "https://staging.example.com/", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, constants.FormatYAML, cfg.Output)
	assert.Equal(t, ifpa.CacheTypeMemory, cfg.Cache.Type)
	assert.Equal(t, 50, cfg.Cache.MaxSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"output":    "IFPA_OUTPUT",
		"log level": "IFPA_LOGGING_LEVEL",
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)
			t.Setenv(env, "bogus")

			_, err := config.Load(config.NewViper(""))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}

	for _, cacheType := range []string{"nats", "chain"} {
		t.Run(cacheType+" without url", func(t *testing.T) {
			isolateHome(t)
			t.Setenv("IFPA_CACHE_TYPE", cacheType)

			_, err := config.Load(config.NewViper(""))
			assert.ErrorIs(t, err, ifpa.ErrNATSConfigRequired)
		})
	}

	t.Run("unknown cache type", func(t *testing.T) {
		isolateHome(t)
		t.Setenv("IFPA_CACHE_TYPE", "redis")

		_, err := config.Load(config.NewViper(""))
		assert.ErrorIs(t, err, ifpa.ErrUnsupportedCache)
	})

	t.Run("unreadable file", func(t *testing.T) {
		isolateHome(t)

		path := filepath.Join(t.TempDir(), "broken.yml")
		require.NoError(t, os.WriteFile(path, []byte("api_key: [unterminated"), 0o600))

		_, err := config.Load(config.NewViper(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})
}

func TestSave(t *testing.T) {
	home := isolateHome(t)

	v := config.NewViper("")
	cfg, err := config.Load(v)
	require.NoError(t, err)

	cfg.APIKey = "saved-key"

	path, err := config.Save(v, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ifpa", "config.yml"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	reloaded, err := config.Load(config.NewViper(""))
	require.NoError(t, err)
	assert.Equal(t, "saved-key", reloaded.APIKey)
}

func TestConfig_ClientConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		APIKey:  "k",
		BaseURL: "https://api.example.com",
		Timeout: 5 * time.Second,
		Retries: 2,
		Cache:   config.CacheConfig{Type: ifpa.CacheTypeMemory, TTL: time.Minute},
	}

	clientConfig, err := cfg.ClientConfig(ifpa.NopLogger{}, true)
	require.NoError(t, err)
	assert.Equal(t, "k", clientConfig.APIKey)
	assert.Equal(t, 2, clientConfig.RetryMax)
	assert.True(t, clientConfig.Debug)
	assert.IsType(t, &ifpa.MemoryCache{}, clientConfig.Cache)
	assert.Equal(t, time.Minute, clientConfig.CacheTTL)

	cfg.Cache.Type = ifpa.CacheTypeNone

	clientConfig, err = cfg.ClientConfig(ifpa.NopLogger{}, false)
	require.NoError(t, err)
	assert.Nil(t, clientConfig.Cache)

	cfg.Cache.Type = ""

	clientConfig, err = cfg.ClientConfig(ifpa.NopLogger{}, false)
	require.NoError(t, err)
	assert.Nil(t, clientConfig.Cache)

	cfg.Cache = config.CacheConfig{Type: ifpa.CacheTypeChain, NATSURL: "nats://127.0.0.1:4222"}

	_, err = cfg.ClientConfig(ifpa.NopLogger{}, false)
	require.ErrorIs(t, err, ifpa.ErrNATSConfigRequired)
}

func TestMaskAPIKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, config.MaskAPIKey(""))
	assert.Equal(t, constants.MaskedSecret, config.MaskAPIKey("abcd"))
	assert.Equal(t, constants.MaskedSecret+"wxyz", config.MaskAPIKey("0123456789wxyz"))
}

func TestSet(t *testing.T) {
	isolateHome(t)

	v := config.NewViper("")
	_, err := config.Load(v)
	require.NoError(t, err)

	cfg, err := config.Set(v, "output", "json")
	require.NoError(t, err)
	assert.Equal(t, constants.FormatJSON, cfg.Output)

	cfg, err = config.Set(v, "retries", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Retries)

	_, err = config.Set(v, "colour", "none")
	require.ErrorIs(t, err, constants.ErrConfigKeyUnknown)

	_, err = config.Set(v, "output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutput)
}
