package constant

// Invidious API paths, appended to a mirror base URL.
const (
	StatsEndpoint  = "/api/v1/stats"
	SearchEndpoint = "/api/v1/search"
	VideoEndpoint  = "/api/v1/videos/"
)

// DefaultMirrorsFile is the filename of the persisted mirror pool inside the config directory.
const DefaultMirrorsFile = "mirrors.json"

// ReleasesURL is queried by the update notifier.
const ReleasesURL = "https://api.github.com/repos/ytbascii/ytbascii/releases/latest"
