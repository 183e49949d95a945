package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬  ┬┌┬┐┌─┐
  │ ┬│  │ ││├┤
  └─┘┴─┘┴─┴┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "glide",
		Short: "List transition choreography for server-driven Go UIs",
		Long: `Glide choreographs enter/appear/leave CSS transitions for items in
dynamic lists, entirely from the Go side of a server-driven UI.

  • Per-item transition state machine with exactly-once completion
  • Timer-driven class application across paint boundaries
  • Timeout or native-event resolution, with graceful degradation
  • Prometheus and OpenTelemetry instrumentation`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the glide ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}
