// Package config loads and persists the ifpa CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

const (
	configDirName  = ".ifpa"
	configFileName = "config.yml"
	envPrefix      = "IFPA"
)

// Config is the CLI configuration file.
type Config struct {
	APIKey         string        `mapstructure:"api_key"         yaml:"api_key,omitempty"`
	BaseURL        string        `mapstructure:"base_url"        yaml:"base_url,omitempty"`
	Timeout        time.Duration `mapstructure:"timeout"         yaml:"timeout,omitempty"`
	Output         string        `mapstructure:"output"          yaml:"output,omitempty"`
	NoColor        bool          `mapstructure:"no_color"        yaml:"no_color,omitempty"`
	SkipValidation bool          `mapstructure:"skip_validation" yaml:"skip_validation,omitempty"`
	Retries        int           `mapstructure:"retries"         yaml:"retries,omitempty"`
	Logging        LoggingConfig `mapstructure:"logging"         yaml:"logging"`
	Cache          CacheConfig   `mapstructure:"cache"           yaml:"cache"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CacheConfig configures the optional response cache.
type CacheConfig struct {
	Type    ifpa.CacheType `mapstructure:"type"     yaml:"type"`
	MaxSize int            `mapstructure:"max_size" yaml:"max_size,omitempty"`
	TTL     time.Duration  `mapstructure:"ttl"      yaml:"ttl,omitempty"`
	NATSURL string         `mapstructure:"nats_url" yaml:"nats_url,omitempty"`
	Bucket  string         `mapstructure:"bucket"   yaml:"bucket,omitempty"`
}

// DefaultPath returns $HOME/.ifpa/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

// NewViper returns a viper instance with defaults and IFPA_ environment
// bindings. configPath overrides the default file location.
func NewViper(configPath string) *viper.Viper {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about.
	_ = v.BindEnv("api_key")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, configDirName))
		}
	}

	return v
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", ifpa.DefaultBaseURL)
	v.SetDefault("timeout", ifpa.DefaultTimeout)
	v.SetDefault("output", constants.FormatTable)
	v.SetDefault("no_color", false)
	v.SetDefault("skip_validation", false)
	v.SetDefault("retries", 0)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("cache.type", string(ifpa.CacheTypeNone))
	v.SetDefault("cache.ttl", ifpa.DefaultCacheTTL)
	v.SetDefault("cache.bucket", "ifpa")
}

// Load reads the config file, if any, and validates the result. A missing
// file is not an error: defaults, environment and flags still apply.
func Load(v *viper.Viper) (*Config, error) {
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	err = validate(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// validate checks if the configuration is valid.
func validate(cfg *Config) error {
	switch cfg.Output {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, cfg.Output)
	}

	_, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("%w: %s", constants.ErrInvalidLogLevel, cfg.Logging.Level)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout: %w", ifpa.ErrInvalidTimeout)
	}

	switch cfg.Cache.Type {
	case "", ifpa.CacheTypeNone, ifpa.CacheTypeMemory:
	case ifpa.CacheTypeNATS, ifpa.CacheTypeChain:
		if cfg.Cache.NATSURL == "" {
			return ifpa.ErrNATSConfigRequired
		}
	default:
		return fmt.Errorf("%w: %s", ifpa.ErrUnsupportedCache, cfg.Cache.Type)
	}

	return nil
}

// Save writes cfg to the file v was loaded from, or to DefaultPath. It
// returns the path written.
func Save(v *viper.Viper, cfg *Config) (string, error) {
	configFile := v.ConfigFileUsed()
	if configFile == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return "", err
		}

		configFile = defaultPath
	}

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}

// ClientConfig converts cfg into library configuration. The cache backend is
// created here; the caller owns closing it when it holds a NATS connection.
func (c *Config) ClientConfig(logger ifpa.Logger, debug bool) (*ifpa.Config, error) {
	clientConfig := &ifpa.Config{
		APIKey:         c.APIKey,
		BaseURL:        c.BaseURL,
		Timeout:        c.Timeout,
		SkipValidation: c.SkipValidation,
		Debug:          debug,
		Logger:         logger,
		RetryMax:       c.Retries,
		CacheTTL:       c.Cache.TTL,
	}

	cacheType := c.Cache.Type
	if cacheType == "" {
		cacheType = ifpa.CacheTypeNone
	}

	cacheConfig := &ifpa.CacheConfig{Type: cacheType, MaxSize: c.Cache.MaxSize}
	if cacheType == ifpa.CacheTypeNATS || cacheType == ifpa.CacheTypeChain {
		cacheConfig.NATS = &ifpa.NATSKVConfig{URL: c.Cache.NATSURL, Bucket: c.Cache.Bucket, TTL: c.Cache.TTL}
	}

	cache, err := ifpa.NewCacheFromConfig(cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	clientConfig.Cache = cache

	return clientConfig, nil
}

// settableKeys are the keys accepted by Set.
var settableKeys = []string{
	"api_key", "base_url", "timeout", "output", "no_color", "skip_validation", "retries",
	"logging.level", "logging.format",
	"cache.type", "cache.max_size", "cache.ttl", "cache.nats_url", "cache.bucket",
}

// Set assigns one key on v and returns the resulting validated config.
func Set(v *viper.Viper, key, value string) (*Config, error) {
	if !slices.Contains(settableKeys, key) {
		return nil, fmt.Errorf("%w: %s", constants.ErrConfigKeyUnknown, key)
	}

	v.Set(key, value)

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	err = validate(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// MaskAPIKey hides all but the last few characters of key.
func MaskAPIKey(key string) string {
	if key == "" {
		return constants.NotAvailable
	}

	if len(key) <= constants.MaskVisibleChars {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + key[len(key)-constants.MaskVisibleChars:]
}
