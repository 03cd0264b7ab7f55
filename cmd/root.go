// Package cmd contains the pfterm command line interface.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andre0707/pfterm/internal/creds"
)

var credsPath string

var rootCmd = &cobra.Command{
	Use:     "pfterm",
	Short:   "Terminal client for the ProjectFacts time-tracking API",
	Long:    "pfterm reads your daily attendance and booked times from a ProjectFacts server\nand shows booked, billable and unbooked totals.",
	Version: "0.1.0",

	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command, cancelling on SIGINT/SIGTERM.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&credsPath, "credentials", "",
		"credentials file (default "+creds.DefaultPath()+")")
}
