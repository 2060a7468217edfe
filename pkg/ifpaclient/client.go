package ifpaclient

import (
	"fmt"

	"github.com/fivetwenty-io/ifpa-client/internal/client"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// New creates a new IFPA API client. The API key must be set on config; use
// NewFromEnv to fall back to IFPA_API_KEY.
func New(config *ifpa.Config) (ifpa.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating IFPA client: %w", err)
	}

	return c, nil
}

// NewFromEnv is New with config.APIKey defaulted from the IFPA_API_KEY
// environment variable. config is not modified.
func NewFromEnv(config *ifpa.Config) (ifpa.Client, error) {
	resolved := ifpa.Config{}
	if config != nil {
		resolved = *config
	}

	resolved.APIKey = ifpa.APIKeyFromEnv(resolved.APIKey)

	return New(&resolved)
}
