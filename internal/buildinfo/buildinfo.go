// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags. The package also honors values set
// in the root cli package (cli.Version/cli.Date) so external build scripts
// that target that path keep working.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/seshat-abacus/cli"
)

var (
	// Version is the semantic version or custom string. Defaults to cli.Version or "dev".
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier (optional).
	BuiltBy = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := firstNonEmpty(Version, cli.Version, "dev")

	parts := make([]string, 0, 2)
	if Commit != "" {
		parts = append(parts, "commit="+shortCommit(Commit))
	}
	if d := firstNonEmpty(Date, cli.Date); d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) == 0 {
		return v
	}
	return v + " (" + strings.Join(parts, ", ") + ")"
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
