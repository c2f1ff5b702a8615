package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the type names, quantifiers and modifier patterns may use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vocabulary()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "types:")
		for _, name := range v.Names() {
			e, _ := v.Lookup(name)
			tags := make([]string, len(e.Tags))
			for i, t := range e.Tags {
				tags[i] = string(t)
			}
			kind := strings.Join(tags, " or ")
			if e.Callback {
				kind += " (callback)"
			}
			fmt.Fprintf(out, "  %-10s %s\n", name, kind)
		}

		fmt.Fprintln(out, "quantifiers:")
		for _, q := range v.Quantifiers() {
			upper := fmt.Sprint(q.Max)
			if q.Max == math.MaxInt {
				upper = "many"
			}
			fmt.Fprintf(out, "  %c          %d to %s\n", q.Symbol, q.Min, upper)
		}

		if neg := v.Negation(); neg != 0 {
			fmt.Fprintln(out, "modifiers:")
			fmt.Fprintf(out, "  %c          anything besides\n", neg)
		}
		return nil
	},
}
