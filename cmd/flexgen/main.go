// Package main implements flexgen, the offline schema-to-source generator
// for xgx-report.
//
// flexgen consumes the same YAML error-type schema the runtime builder
// accepts and emits Go source with one typed constructor per variant, for
// projects that prefer generation-time type safety over the data-driven
// builder. Validation is shared with the library: a schema that generates
// is a schema that defines.
//
// Usage:
//
//	flexgen validate schema.yaml
//	flexgen generate schema.yaml -o apperror_gen.go -p apperr -t stack
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "flexgen",
	Short:         "Generate Go error types from xgx-report schemas",
	Long:          `flexgen expands a declarative YAML error-type schema into Go source with typed constructors, bound to a tracer backend chosen at generation time.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
