package ifpa

import (
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Defaults applied by Config.Normalize.
const (
	DefaultBaseURL   = "https://api.ifpapinball.com"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "ifpa-client-go/1.0"

	// EnvAPIKey is the environment variable consulted by APIKeyFromEnv.
	EnvAPIKey = "IFPA_API_KEY"
)

// Config represents client configuration for building an ifpa.Client.
//
// # API key resolution
//
// The client never reads the environment on its own. Bootstrapping code that
// wants the conventional IFPA_API_KEY fallback calls APIKeyFromEnv (or uses
// ifpaclient.NewFromEnv) before constructing the client.
//
// # Timeouts and retries
//
// Timeout bounds each HTTP exchange. Retries are disabled unless RetryMax is
// set; the library never retries on its own.
type Config struct {
	// APIKey is sent in the X-API-Key header. Required.
	APIKey string
	// BaseURL defaults to DefaultBaseURL. Trailing slashes are removed.
	BaseURL string
	// Timeout for a single request. Defaults to DefaultTimeout.
	Timeout time.Duration
	// SkipValidation disables local parameter validation before requests.
	SkipValidation bool

	// Debug enables request/response logging through Logger.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// HTTPClient replaces the pooled client used for transport.
	HTTPClient *http.Client

	// RetryMax opts into retryablehttp backoff for 429, 5xx and connection errors.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Cache enables the GET response cache when non-nil.
	Cache Cache
	// CacheTTL is how long cached bodies stay fresh.
	CacheTTL time.Duration
}

// Normalize validates c and returns a defaulted copy. c itself is not modified.
func (c *Config) Normalize() (*Config, error) {
	if c == nil {
		return nil, &ConfigurationError{Field: "api_key", Err: ErrMissingAPIKey}
	}

	normalized := *c
	normalized.APIKey = strings.TrimSpace(c.APIKey)

	if normalized.APIKey == "" {
		return nil, &ConfigurationError{Field: "api_key", Err: ErrMissingAPIKey}
	}

	if normalized.BaseURL == "" {
		normalized.BaseURL = DefaultBaseURL
	}

	normalized.BaseURL = NormalizeBaseURL(normalized.BaseURL)

	parsed, err := url.Parse(normalized.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ConfigurationError{Field: "base_url", Err: ErrInvalidBaseURL}
	}

	if normalized.Timeout < 0 {
		return nil, &ConfigurationError{Field: "timeout", Err: ErrInvalidTimeout}
	}

	if normalized.Timeout == 0 {
		normalized.Timeout = DefaultTimeout
	}

	if normalized.UserAgent == "" {
		normalized.UserAgent = DefaultUserAgent
	}

	if normalized.Logger == nil {
		normalized.Logger = NopLogger{}
	}

	return &normalized, nil
}

// ValidatesRequests reports whether local parameter validation is on.
func (c *Config) ValidatesRequests() bool {
	return !c.SkipValidation
}

// NormalizeBaseURL strips every trailing slash. Applying it twice is a no-op.
func NormalizeBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

// APIKeyFromEnv returns explicit when set, otherwise the IFPA_API_KEY value.
func APIKeyFromEnv(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}

	return os.Getenv(EnvAPIKey)
}
