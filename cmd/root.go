// Package cmd implements the command-line interface for ytbascii.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytbascii/ytbascii/color"
	"github.com/ytbascii/ytbascii/constant"
	"github.com/ytbascii/ytbascii/icon"
	"github.com/ytbascii/ytbascii/key"
	"github.com/ytbascii/ytbascii/log"
	"github.com/ytbascii/ytbascii/style"
	"github.com/ytbascii/ytbascii/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("pool", "p", "", "Path to the mirror pool file")
	lo.Must0(viper.BindPFlag(key.MirrorsPath, rootCmd.PersistentFlags().Lookup("pool")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.OutOrStdout())
	})
}

// rootCmd defines the entry point for the ytbascii application.
var rootCmd = &cobra.Command{
	Use:   constant.Ytbascii,
	Short: "Browse a federated video API from the terminal",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.Accent).Render("    - Browse a federated video API from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		cmd.Println(constant.Banner)
		cmd.Println("Version: " + constant.Version)
		cmd.Println()

		manager := openManager()
		server, err := pickMirror(cmd.Context(), manager)
		handleErr(err)

		cmd.Printf("%s Using %s\n", icon.Get(icon.Mirror), style.Fg(color.Yellow)(server.URL))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
