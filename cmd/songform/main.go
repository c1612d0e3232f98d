package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sukalov/songform/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "songform",
	Short: "Lay out a song structure and assemble its lyrics",
	Long: `songform parses a song structure like "1-verse-chorus-2-verse-chorus-3",
fills in lyrics per unique section and renders the finished song.

Sections 1, 2 and 3 are shorthand for intro, interlude and outro.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Setup(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
