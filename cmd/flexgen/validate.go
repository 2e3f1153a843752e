// validate.go — the flexgen validate command.
//
// Parses a schema file and runs it through xgxreport.Define so the CLI
// reports exactly the definition errors an application would hit, with a
// non-zero exit for CI pipelines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xgxreport "github.com/xgx-io/xgx-report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema.yaml>",
	Short: "Check an error-type schema for definition errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	schema, err := loadSchema(args[0])
	if err != nil {
		return err
	}
	// The backend is irrelevant to validation; noop keeps it side-effect free.
	if _, err := xgxreport.Define(schema, xgxreport.NoopTracer()); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d variants)\n", args[0], len(schema.Variants))
	return nil
}

func loadSchema(path string) (xgxreport.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return xgxreport.Schema{}, fmt.Errorf("read schema: %w", err)
	}
	schema, err := xgxreport.ParseSchema(data)
	if err != nil {
		return xgxreport.Schema{}, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}
