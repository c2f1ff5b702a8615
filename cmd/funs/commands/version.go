package commands

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/copenhas/funs/cmd/funs/commands.Version=..."
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of funs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, resolvedVersion())
			return nil
		}
		writeVersion(out)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Print only the version number")
}

// resolvedVersion prefers the linker-provided version and falls back to the
// module version recorded by go install.
func resolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

func writeVersion(out io.Writer) {
	fmt.Fprintf(out, "funs version %s\n", resolvedVersion())
	for _, field := range []struct{ label, val string }{
		{"commit", GitCommit},
		{"built", BuildDate},
	} {
		if field.val != "" {
			fmt.Fprintf(out, "  %-7s %s\n", field.label+":", field.val)
		}
	}
	fmt.Fprintf(out, "  %-7s %s %s/%s\n", "go:", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
