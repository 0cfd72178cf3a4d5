// Package constants centralizes tunables shared across the client and CLI.
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
)

// Retry limits for transient transport failures.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Action polling.
const (
	// DefaultPollInterval is the delay between action poll attempts.
	DefaultPollInterval = 1 * time.Second

	// DefaultPollMaxWait is the default total budget for waiting on an action.
	DefaultPollMaxWait = 30 * time.Second
)

// Pagination defaults.
const (
	// StandardPageSize is the common page size for API responses.
	StandardPageSize = 25

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 50
)

// Identification.
const (
	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "strato-go"
)

// Output formats.
const (
	// FormatTable renders aligned columns.
	FormatTable = "table"

	// FormatJSON renders indented JSON.
	FormatJSON = "json"

	// FormatYAML renders YAML.
	FormatYAML = "yaml"

	// FormatCSV renders comma-separated rows with a header line.
	FormatCSV = "csv"

	// FormatShell renders KEY=value lines suitable for eval in a shell.
	FormatShell = "shell"
)
