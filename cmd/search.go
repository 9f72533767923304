package cmd

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ytbascii/ytbascii/invidious"
	"github.com/ytbascii/ytbascii/key"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Int("page", 1, "Result page")
	searchCmd.Flags().String("sort", "", "Sort order: "+strings.Join(invidious.SortOptions, ", "))
	searchCmd.Flags().String("date", "", "Upload date: "+strings.Join(invidious.DateOptions, ", "))
	searchCmd.Flags().String("duration", "", "Duration: "+strings.Join(invidious.DurationOptions, ", "))
	searchCmd.Flags().String("type", "", "Result type: "+strings.Join(invidious.TypeOptions, ", "))
	searchCmd.Flags().StringSlice("features", nil, "Required features: "+strings.Join(invidious.FeatureOptions, ", "))
	searchCmd.Flags().StringP("region", "r", "", "Region code, defaults to api.region")

	for name, options := range map[string][]string{
		"sort":     invidious.SortOptions,
		"date":     invidious.DateOptions,
		"duration": invidious.DurationOptions,
		"type":     invidious.TypeOptions,
		"features": invidious.FeatureOptions,
	} {
		lo.Must0(searchCmd.RegisterFlagCompletionFunc(name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return options, cobra.ShellCompDirectiveNoFileComp
		}))
	}
}

// stringFlag is present only when the user passed the flag.
func stringFlag(flags *pflag.FlagSet, name string) mo.Option[string] {
	if !flags.Changed(name) {
		return mo.None[string]()
	}
	return mo.Some(lo.Must(flags.GetString(name)))
}

// region falls back to api.region when the flag is absent.
func region(flags *pflag.FlagSet) mo.Option[string] {
	return mo.Some(stringFlag(flags, "region").OrElse(viper.GetString(key.APIRegion)))
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search videos on a random online mirror",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		params := invidious.SearchParams{
			Query:    strings.Join(args, " "),
			SortBy:   stringFlag(flags, "sort"),
			Date:     stringFlag(flags, "date"),
			Duration: stringFlag(flags, "duration"),
			Type:     stringFlag(flags, "type"),
			Features: lo.Must(flags.GetStringSlice("features")),
			Region:   region(flags),
		}
		if flags.Changed("page") {
			params.Page = mo.Some(lo.Must(flags.GetInt("page")))
		}
		handleErr(params.Validate())

		client, err := invidious.NewFromPool(mirrorSource(cmd.Context(), openManager()))
		handleErr(err)

		body, err := client.Search(cmd.Context(), params)
		handleErr(err)
		printJSON(cmd, body)
	},
}

// printJSON indents body when it is valid json and prints it as-is otherwise.
func printJSON(cmd *cobra.Command, body string) {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(body), "", "  "); err != nil {
		cmd.Println(body)
		return
	}
	cmd.Println(out.String())
}
