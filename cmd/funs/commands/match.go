package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/copenhas/funs"
	"github.com/copenhas/funs/internal/literal"
)

var (
	matchPartial bool
	matchFail    bool
)

// errTargetFailed is what the sample target returns with --fail.
var errTargetFailed = errors.New("target failed")

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [arg...]",
	Short: "Match literal arguments against a pattern",
	Long: `Match literal arguments against a pattern and print the normalized
parameters the target would receive.

Arguments are JSON values, or one of: undefined, NaN, fn (a callback),
/expr/ (a regexp), @2006-01-02T15:04:05Z (a date).

Examples:
  funs match "string+" '"a"' '"b"'
  funs match "array|number*" 1 2 3
  funs match "object?, function" fn
  funs match --fail "string, callback" '"example.com"' fn
  funs match --partial "number, number" 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVarP(&matchPartial, "partial", "p", false, "Enable partial application")
	matchCmd.Flags().BoolVar(&matchFail, "fail", false, "Make the target return an error after a successful match")
}

func runMatch(cmd *cobra.Command, args []string) error {
	callArgs, err := literal.ParseAll(args[1:])
	if err != nil {
		return err
	}

	opts := funs.DefaultOptions()
	opts.Partial = matchPartial
	opts.Vocabulary = vocabulary()
	opts.Logger = logger

	target := func(_ any, params funs.Params) (any, error) {
		if matchFail {
			return nil, errTargetFailed
		}
		return params, nil
	}

	f, err := funs.CompileWithOptions(args[0], target, opts)
	if err != nil {
		return err
	}

	result, err := f.Call(callArgs...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if next, ok := funs.AsFunc(result); ok {
		fmt.Fprintf(out, "partial: waiting for %s\n", next.Pattern())
		writeParams(out, "captured", next.Captured())
		return nil
	}
	if params, ok := result.(funs.Params); ok && !matchFail {
		writeParams(out, "params", params)
		return nil
	}
	fmt.Fprintf(out, "callback returned: %s\n", literal.Format(result))
	return nil
}

func writeParams(out io.Writer, title string, params funs.Params) {
	fmt.Fprintf(out, "%s: %d\n", title, params.Len())
	for i, p := range params {
		fmt.Fprintf(out, "  %d: %s\n", i, literal.Format(p))
	}
}
