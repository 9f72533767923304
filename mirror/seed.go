package mirror

// DefaultMirrors is the bundled list of well-known Invidious instances used when no pool file exists yet.
var DefaultMirrors = []string{
	"https://invidious.snopyta.org",
	"https://invidious.fdn.fr",
	"https://invidious.namazso.eu",
	"https://invidious.tube",
	"https://invidious.exonip.de",
	"https://invidious.kavin.rocks",
	"https://invidious.zapashcanon.fr",
	"https://invidious.048596.xyz",
	"https://invidious.13ad.de",
	"https://invidious.silkky.cloud",
	"https://invidious.flelay.fr",
	"https://invidious.toot.koeln",
	"https://invidious.srv.snopyta.org",
}
