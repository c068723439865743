package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off by default; these apply only when a caller
// opts in.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Token handling.
const (
	// TokenExpiryMargin is subtracted from a token's lifetime so it is
	// refreshed before the server rejects it.
	TokenExpiryMargin = 30 * time.Second

	// DefaultTokenLifetime is assumed when the token endpoint omits
	// expires_in.
	DefaultTokenLifetime = 2 * time.Hour
)

// Cache defaults.
const (
	// DefaultCacheSize is the default maximum entries for the memory cache.
	DefaultCacheSize = 1000
)

// Output formatting.
const (
	// TableMaxColumnWidth caps column width in table output.
	TableMaxColumnWidth = 50
)
