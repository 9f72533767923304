// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Mirror Pool - these keys govern where the mirror pool lives and how its health is refreshed.
const (
	MirrorsPath            = "mirrors.path"
	MirrorsStaleness       = "mirrors.staleness"
	MirrorsProbeTimeout    = "mirrors.probe_timeout"
	MirrorsWorkers         = "mirrors.workers"
	MirrorsReseedOnCorrupt = "mirrors.reseed_on_corrupt"
)

// API Requests - these keys shape the requests sent to the selected mirror.
const (
	APIRegion        = "api.region"
	APICacheLifetime = "api.cache_lifetime"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
