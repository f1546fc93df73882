// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Nasaimg is the canonical application identifier used for filesystem paths and CLI branding.
	Nasaimg = "nasaimg"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// BaseURL is the root of the NASA Image and Video Library API.
	BaseURL = "https://images-api.nasa.gov"

	// UserAgent is the default HTTP User-Agent sent to the API.
	UserAgent = Nasaimg + "/" + Version
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
