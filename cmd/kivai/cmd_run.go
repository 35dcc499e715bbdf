package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tech4life-beyond/kivai/internal/infrastructure/logging"
	"github.com/tech4life-beyond/kivai/internal/intent"
	"github.com/tech4life-beyond/kivai/internal/parser"
	"github.com/tech4life-beyond/kivai/internal/runtime"
)

var echoMessageFlag string

func init() {
	echoCmd.Flags().StringVar(&echoMessageFlag, "message", "", "message to echo")
	_ = echoCmd.MarkFlagRequired("message")

	runCmd.AddCommand(echoCmd, parseCmd)
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a local protocol demo",
}

var echoCmd = &cobra.Command{
	Use:   "echo",
	Short: "Execute the echo intent through the full pipeline",
	Args:  cobra.NoArgs,
	RunE:  runEcho,
}

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse free text into a canonical intent payload",
	Long:  "Run the reference rule-based parser on an utterance and print the resulting payload without executing it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runEcho(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logging.New(cfg.Logging, version)

	exec, cleanup, err := buildExecutor(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	p := intent.Payload{
		Intent: "echo",
		Params: map[string]any{"message": echoMessageFlag},
	}
	ack := exec.Execute(p, runtime.Config{Strict: false})

	if err := printAck(ack); err != nil {
		return err
	}
	if ack.Status == runtime.StatusFailed {
		return errExecutionFailed
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	p := parser.Parse(args[0], parser.Options{})

	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
