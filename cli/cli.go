package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/seshat-abacus/cli.Version=1.2.3' -X 'github.com/flarebyte/seshat-abacus/cli.Date=2026-08-30'"
//
// internal/buildinfo reads these as a fallback so existing build scripts
// keep working.
var (
	Version string
	Date    string
)
