package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Online
	Offline
	Unknown
	Mirror
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Online: {
		emoji:   "🟢",
		nerd:    "",
		plain:   "+",
		kaomoji: "(＾▽＾)",
		squares: "🟩",
	},
	Offline: {
		emoji:   "🔴",
		nerd:    "",
		plain:   "-",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Unknown: {
		emoji:   "🟡",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟨",
	},
	Mirror: {
		emoji:   "📡",
		nerd:    "",
		plain:   "@",
		kaomoji: "(⌐■_■)",
		squares: "🟪",
	},
}
