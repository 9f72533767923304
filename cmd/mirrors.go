package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/ytbascii/ytbascii/color"
	"github.com/ytbascii/ytbascii/filesystem"
	"github.com/ytbascii/ytbascii/icon"
	"github.com/ytbascii/ytbascii/mirror"
	"github.com/ytbascii/ytbascii/style"
	"github.com/ytbascii/ytbascii/util"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(mirrorsCmd)
}

var mirrorsCmd = &cobra.Command{
	Use:     "mirrors",
	Short:   "Manage the mirror pool",
	Aliases: []string{"mirror"},
}

var statusTags = map[mirror.Status]func(string) string{
	mirror.Online:  style.Tag(color.Cream, color.Online),
	mirror.Offline: style.Tag(color.Cream, color.Offline),
	mirror.Unknown: style.Tag(color.Cream, color.Unknown),
}

var statusIcons = map[mirror.Status]icon.Icon{
	mirror.Online:  icon.Online,
	mirror.Offline: icon.Offline,
	mirror.Unknown: icon.Unknown,
}

// knownMirrorURLs reads the pool file without seeding or rewriting it.
func knownMirrorURLs(fs afero.Fs, path string) []string {
	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return nil
	}

	pool, err := mirror.NewStore(fs, path, nil).Load()
	if err != nil {
		return nil
	}
	return pool.URLs()
}

func completionMirrorURLs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return knownMirrorURLs(filesystem.API().Fs, poolPath()), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	mirrorsCmd.AddCommand(mirrorsListCmd)
	mirrorsListCmd.Flags().StringP("filter", "f", "", "Only list mirrors fuzzily matching this text")
	mirrorsListCmd.Flags().BoolP("json", "j", false, "Output as json")
	mirrorsListCmd.Flags().BoolP("yaml", "y", false, "Output as yaml")
	mirrorsListCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

type yamlServer struct {
	URL         string `yaml:"url"`
	Status      string `yaml:"status"`
	LastChecked string `yaml:"last_checked,omitempty"`
}

func encodeYAML(servers mirror.Pool) ([]byte, error) {
	return yaml.Marshal(lo.Map(servers, func(s mirror.Server, _ int) yamlServer {
		server := yamlServer{URL: s.URL, Status: s.Status.String()}
		if s.Probed() {
			server.LastChecked = s.LastChecked.UTC().Format(mirror.TimestampLayout)
		}
		return server
	}))
}

var mirrorsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List mirrors with their last known status",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openManager()
		servers := manager.Servers()

		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			servers = lo.Filter(servers, func(s mirror.Server, _ int) bool {
				return fuzzy.MatchNormalizedFold(filter, s.URL)
			})
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoded, err := mirror.Encode(servers)
			handleErr(err)
			cmd.Print(string(encoded))
			return
		}

		if lo.Must(cmd.Flags().GetBool("yaml")) {
			encoded, err := encodeYAML(servers)
			handleErr(err)
			cmd.Print(string(encoded))
			return
		}

		truncate := style.Truncate(util.TerminalWidth(80))
		for _, server := range servers {
			checked := "never"
			if server.Probed() {
				checked = server.LastChecked.Local().Format(time.DateTime)
			}

			cmd.Println(truncate(lipgloss.JoinHorizontal(
				lipgloss.Top,
				icon.Get(statusIcons[server.Status]), " ",
				statusTags[server.Status](server.Status.String()), " ",
				server.URL, " ",
				style.Faint(checked),
			)))
		}

		online := len(servers.Online())
		cmd.Printf("\n%s, %d online\n", util.Quantify(len(servers), "mirror", "mirrors"), online)
	},
}

func init() {
	mirrorsCmd.AddCommand(mirrorsRefreshCmd)
	mirrorsRefreshCmd.Flags().BoolP("force", "f", false, "Probe even if the last results are still fresh")
}

var mirrorsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Probe every mirror and save the results",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openManager()

		probed, err := refresh(cmd.Context(), manager, lo.Must(cmd.Flags().GetBool("force")))
		handleErr(err)

		if !probed {
			cmd.Printf("%s Mirrors are fresh, use --force to probe anyway\n", icon.Get(icon.Success))
			return
		}

		servers := manager.Servers()
		cmd.Printf("%s %d of %s online\n", icon.Get(icon.Success),
			len(servers.Online()), util.Quantify(len(servers), "mirror", "mirrors"))
	},
}

func init() {
	mirrorsCmd.AddCommand(mirrorsPickCmd)
}

var mirrorsPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Print a random online mirror",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		server, err := pickMirror(cmd.Context(), openManager())
		handleErr(err)
		cmd.Println(server.URL)
	},
}

func init() {
	mirrorsCmd.AddCommand(mirrorsAddCmd)
}

var mirrorsAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a mirror to the pool",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := openManager()
		handleErr(manager.Add(args[0]))
		cmd.Printf("%s Added %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(args[0]))
	},
}

func init() {
	mirrorsCmd.AddCommand(mirrorsRemoveCmd)
}

var mirrorsRemoveCmd = &cobra.Command{
	Use:               "remove <url>",
	Short:             "Remove a mirror from the pool",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionMirrorURLs,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openManager()

		removed, err := manager.Remove(args[0])
		if errors.Is(err, mirror.ErrUnknownServer) && len(manager.Servers()) > 0 {
			err = fmt.Errorf("%w, did you mean %s?", err,
				style.Fg(color.Yellow)(closest(args[0], manager.Servers().URLs())))
		}
		handleErr(err)

		cmd.Printf("%s Removed %s\n", icon.Get(icon.Success), util.Quantify(removed, "mirror", "mirrors"))
	},
}
