package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qalc/internal/engine"
)

// fnCmd evaluates a scientific function on one operand.
var fnCmd = &cobra.Command{
	Use:   "fn [name] [operand]",
	Short: "Evaluate a scientific function",
	Long: `Evaluates a unary scientific function and prints the result.

Functions: sin, cos, tan (degrees), log, ln, sqrt, square, cube, cbrt,
factorial.

Example:
  qalc fn sqrt 9        # 3
  qalc fn factorial 5   # 120`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := engine.Scientific(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
