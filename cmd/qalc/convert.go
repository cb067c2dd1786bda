package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qalc/internal/engine"
)

var (
	convertFrom string
	convertTo   string
)

// convertCmd converts an integer between numeral bases.
var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert an integer between numeral bases",
	Long: `Re-renders an integer value in another base.

Example:
  qalc convert 255 --from dec --to hex     # FF
  qalc convert ff --from hex --to bin      # 11111111`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runConvert(args[0], convertFrom, convertTo)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func runConvert(value, from, to string) (string, error) {
	fromBase, err := engine.ParseBase(from)
	if err != nil {
		return "", err
	}
	toBase, err := engine.ParseBase(to)
	if err != nil {
		return "", err
	}
	out, err := engine.ConvertBase(value, fromBase, toBase)
	if errors.Is(err, engine.ErrInvalidNumber) {
		return "", fmt.Errorf("invalid input: %q is not a %s integer", value, fromBase)
	}
	return out, err
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "dec", "source base (dec, bin, oct, hex)")
	convertCmd.Flags().StringVar(&convertTo, "to", "hex", "target base (dec, bin, oct, hex)")
}
