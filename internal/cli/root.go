// Package cli provides the command-line interface for the bot.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information
const Version = "0.1.0"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var configDir string
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "reddit-stock-sentiment-bot",
		Short:         "Monitors subreddits for watched tickers, classifies sentiment and dispatches alerts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.config/reddit-stock-sentiment-bot)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newRunCmd(&configDir, &debug))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("reddit-stock-sentiment-bot %s\n", Version)
		},
	}
}
