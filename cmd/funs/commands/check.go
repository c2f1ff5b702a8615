package commands

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/copenhas/funs"
	"github.com/copenhas/funs/match"
)

var (
	checkPartial bool
	checkBind    bool
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern>",
	Short: "Compile a pattern and explain its positions",
	Long: `Compile a pattern and print one line per position with its matcher kind,
description and repetition bounds.

Examples:
  funs check "string, object?, callback"
  funs check "array|number*"
  funs check --partial --bind "number, number"`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkPartial, "partial", "p", false, "Enable partial application")
	checkCmd.Flags().BoolVarP(&checkBind, "bind", "b", false, "Bind the receiver of the first call (requires --partial)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := funs.DefaultOptions()
	opts.Partial = checkPartial
	opts.Bind = checkBind
	opts.Vocabulary = vocabulary()
	opts.Logger = logger

	f, err := funs.CompileWithOptions(args[0], noop, opts)
	if err != nil {
		return err
	}
	p := f.Compiled()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern: %s\n", p)
	fmt.Fprintf(out, "positions: %d\n", p.Len())
	for i, m := range p.Matchers() {
		writeMatcher(out, fmt.Sprintf("%d", i), m, 1)
	}
	if cb := p.CallbackIndex(); cb >= 0 {
		fmt.Fprintf(out, "callback slot: %d\n", cb)
	} else {
		fmt.Fprintln(out, "callback slot: none")
	}
	return nil
}

func writeMatcher(out io.Writer, label string, m match.Matcher, depth int) {
	lo, hi := match.Bounds(m)
	fmt.Fprintf(out, "%s%-3s %-12s %-36s %s\n",
		strings.Repeat("  ", depth), label, m.Kind(), m.Description(), formatBounds(lo, hi))
	for _, child := range match.Children(m) {
		writeMatcher(out, "-", child, depth+1)
	}
}

func formatBounds(lo, hi int) string {
	if hi == math.MaxInt {
		return fmt.Sprintf("[%d, many]", lo)
	}
	return fmt.Sprintf("[%d, %d]", lo, hi)
}

func noop(_ any, _ funs.Params) (any, error) {
	return nil, nil
}
