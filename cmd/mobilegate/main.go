// Package main provides the mobilegate binary: a demo server that keeps
// mobile devices away from desktop-only pages, plus a classify command for
// checking how a given device would be treated.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "mobilegate"

// Set at build time with -ldflags "-X main.version=... -X main.buildTime=...".
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Mobile access gate for desktop-only web apps",
		Long: `mobilegate classifies incoming requests as mobile or desktop and
redirects mobile devices to a "mobile not supported" page.

Classification uses the User-Agent header first, then the Screen-Width and
Screen-Height hints, then Touch-Support combined with Device-Memory.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(classifyCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, version, buildTime)
		},
	})

	return cmd
}
