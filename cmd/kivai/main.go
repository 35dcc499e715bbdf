// Kivai reference runtime.
//
// kivai is the command-line entry point for the intent runtime: it
// validates payloads, executes intents against the adapter registry,
// and serves the HTTP gateway.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// errExecutionFailed marks a command that completed but reported a
// failed outcome (invalid payload, failed ACK). It maps to exit code 1;
// usage and I/O errors map to exit code 2.
var errExecutionFailed = errors.New("execution failed")

var configPathFlag string

var rootCmd = &cobra.Command{
	Use:           "kivai",
	Short:         "Kivai intent runtime",
	Long:          "Validate, execute, and serve Kivai intents against the reference adapter registry.",
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "config file path (default "+defaultConfigPath+")")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errExecutionFailed) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
