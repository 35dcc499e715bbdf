package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tech4life-beyond/kivai/internal/schema"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <payload.json>",
	Short: "Validate a payload against the intent schema",
	Long:  "Check a JSON payload against the canonical intent schema without executing it. Use - to read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := readPayload(args[0])
	if err != nil {
		return err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("building schema validator: %w", err)
	}

	ok, message := validator.Validate(p)
	fmt.Println(message)
	if !ok {
		return errExecutionFailed
	}
	return nil
}
