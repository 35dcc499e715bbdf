package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tech4life-beyond/kivai/internal/infrastructure/logging"
	"github.com/tech4life-beyond/kivai/internal/runtime"
)

var strictFlag bool

func init() {
	executeCmd.Flags().BoolVar(&strictFlag, "strict", false, "disable payload normalization")
	rootCmd.AddCommand(executeCmd)
}

var executeCmd = &cobra.Command{
	Use:   "execute <payload.json>",
	Short: "Execute an intent payload and print the ACK",
	Long:  "Run a JSON payload through the execution pipeline and print the resulting ACK. Use - to read from stdin. A failed ACK exits with status 1.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExecute,
}

func runExecute(cmd *cobra.Command, args []string) error {
	p, err := readPayload(args[0])
	if err != nil {
		return err
	}

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

	strict := cfg.Execution.Strict || strictFlag
	ack := exec.Execute(p, runtime.Config{Strict: strict})

	if err := printAck(ack); err != nil {
		return err
	}
	if ack.Status == runtime.StatusFailed {
		return errExecutionFailed
	}
	return nil
}
