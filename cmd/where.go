package cmd

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/ytbascii/ytbascii/color"
	"github.com/ytbascii/ytbascii/style"
	"github.com/ytbascii/ytbascii/where"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Mirrors", where.Mirrors, "mirrors", mo.Some("m"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Responses", where.Responses, "responses", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, target := range wherePaths {
		if short, ok := target.argShort.Get(); ok {
			whereCmd.Flags().BoolP(target.argLong, short, false, target.name+" path")
		} else {
			whereCmd.Flags().Bool(target.argLong, false, target.name+" path")
		}

		if target.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(target.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show paths where files are stored",
	Run: func(cmd *cobra.Command, args []string) {
		for _, target := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				cmd.Println(target.where())
				return
			}
		}

		headerStyle := style.New().Bold(true).Foreground(color.Accent).Render
		visible := lo.Reject(wherePaths, func(t *whereTarget, _ int) bool {
			return t.hidden
		})

		for i, target := range visible {
			cmd.Printf("%s %s\n", headerStyle(target.name+"?"), style.Fg(color.Yellow)("--"+target.argLong))
			cmd.Println(target.where())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
