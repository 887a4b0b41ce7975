package version

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/seshat-abacus/internal/buildinfo"
)

var (
	flagShort bool
	flagJSON  bool
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagShort || !flagJSON {
			// Exactly one stable line for scripts.
			_, err := fmt.Fprintf(os.Stdout, "seshat %s\n", buildinfo.Summary())
			return err
		}

		// With --json, print a diagnostic object to stdout and a human
		// friendly line to stderr.
		_, _ = fmt.Fprintf(os.Stderr, "seshat version: %s\n", buildinfo.Summary())
		return encodeJSON(os.Stdout, diagnostics())
	},
}

func diagnostics() map[string]any {
	return map[string]any{
		"version":   buildinfo.Version,
		"commit":    buildinfo.Commit,
		"date":      buildinfo.Date,
		"built_by":  buildinfo.BuiltBy,
		"go":        runtime.Version(),
		"go_os":     runtime.GOOS,
		"go_arch":   runtime.GOARCH,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
}
