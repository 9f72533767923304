package version

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/ytbascii/ytbascii/color"
	"github.com/ytbascii/ytbascii/constant"
	"github.com/ytbascii/ytbascii/key"
	"github.com/ytbascii/ytbascii/style"
)

// Notify writes an alert to w when a newer release than the running one is published.
// Lookup failures are silent.
func Notify(w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	latest, err := Latest()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/ytbascii/ytbascii/releases/tag/v"+latest),
	)
}
