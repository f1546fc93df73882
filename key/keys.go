// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// API Access - these keys govern how requests reach the image library.
const (
	APIBaseURL   = "api.base_url"
	APIPageDelay = "api.page_delay"
	APIUserAgent = "api.user_agent"
)

// Search Interaction - these keys define query history and suggestion behavior.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchRememberQueries      = "search.remember_queries"
)

// Output Rendering
const (
	OutputWrap = "output.wrap"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal behavior.
const (
	CliColored  = "cli.colored"
	CliProgress = "cli.progress"
)

// Release Checks
const (
	CliVersionCheck = "cli.version_check"
)
