// Package commands provides the CLI commands for the funs tool.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/copenhas/funs/vocab"
)

var (
	verbose bool
	logger  = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "funs",
	Short: "Check argument patterns and try them against sample calls",
	Long: `funs compiles argument patterns and runs them against sample arguments.

Usage:
  funs check "string, object?, callback"    Compile a pattern and explain it
  funs match "string+" '"a"' '"b"'           Match literal arguments
  funs types                                 List the type vocabulary
  funs version                               Print version

Set FUNS_LOG_LEVEL=debug (or pass --verbose) to trace compilation and matching.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logLevel()
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log compilation and matching at debug level")
}

// logLevel resolves the log level from --verbose or FUNS_LOG_LEVEL.
func logLevel() (slog.Level, error) {
	if verbose {
		return slog.LevelDebug, nil
	}
	env := strings.TrimSpace(os.Getenv("FUNS_LOG_LEVEL"))
	if env == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(env)); err != nil {
		return 0, fmt.Errorf("invalid FUNS_LOG_LEVEL %q: %w", env, err)
	}
	return level, nil
}

// vocabulary is the vocabulary every command compiles against.
func vocabulary() *vocab.Vocabulary {
	return vocab.Default()
}
