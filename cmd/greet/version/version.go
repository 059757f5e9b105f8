package version

import (
	"fmt"
	"runtime"

	"github.com/sirsjg/gogogo/internal/buildinfo"
	"github.com/spf13/cobra"
)

var (
	flagShort bool
	flagJSON  bool
)

// VersionCmd reports build metadata.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the greet version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if flagShort || !flagJSON {
			_, err := fmt.Fprintf(out, "greet %s\n", buildinfo.Summary())
			return err
		}

		// JSON goes to stdout, the human line to stderr.
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "greet version: %s\n", buildinfo.Summary())
		return encodeJSON(out, map[string]any{
			"version":  buildinfo.ResolvedVersion(),
			"commit":   buildinfo.Commit,
			"date":     buildinfo.ResolvedDate(),
			"built_by": buildinfo.BuiltBy,
			"go":       runtime.Version(),
			"go_os":    runtime.GOOS,
			"go_arch":  runtime.GOARCH,
		})
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
}
