package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ytbascii/ytbascii/invidious"
)

func init() {
	rootCmd.AddCommand(videoCmd)
	videoCmd.Flags().StringP("region", "r", "", "Region code, defaults to api.region")
}

var videoCmd = &cobra.Command{
	Use:   "video <id>",
	Short: "Show details of a video from a random online mirror",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := invidious.NewFromPool(mirrorSource(cmd.Context(), openManager()))
		handleErr(err)

		body, err := client.Video(cmd.Context(), args[0], invidious.VideoParams{Region: region(cmd.Flags())})
		handleErr(err)
		printJSON(cmd, body)
	},
}
