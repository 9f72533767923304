// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Ytbascii is the canonical application identifier used for filesystem paths and CLI branding.
	Ytbascii = "ytbascii"

	// Version is the current application semantic version string.
	Version = "0.2.0"

	// UserAgent is the default HTTP User-Agent string used for requests to API mirrors.
	UserAgent = "ytbascii/" + Version
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
