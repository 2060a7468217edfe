package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP headers and content types.
const (
	// HeaderAPIKey carries the IFPA API key.
	HeaderAPIKey = "X-API-Key"

	// ContentTypeJSON is sent in Accept and Content-Type headers.
	ContentTypeJSON = "application/json"
)

// Retry limits used when the CLI opts into retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent lookups in batch operations.
	DefaultConcurrencyLimit = 4
)

// Pagination and display limits.
const (
	// DefaultPageSize is the number of items the CLI requests per page.
	DefaultPageSize = 50

	// DefaultListLimit caps results the CLI prints without --all.
	DefaultListLimit = 50

	// MaxListResults bounds --all so a runaway listing fails loudly.
	MaxListResults = 10000
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaskVisibleChars is how many trailing characters of a key are shown.
	MaskVisibleChars = 4
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
