package root

// Exit codes mirror the conventions of command-line argument parsers:
// usage and parse problems exit 2, computation failures exit 1.
const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

type cliExitError struct {
	code int
	err  error
}

func (e cliExitError) Error() string { return e.err.Error() }
func (e cliExitError) ExitCode() int { return e.code }
func (e cliExitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return cliExitError{code: exitCodeUsage, err: err}
}

func failure(err error) error {
	return cliExitError{code: exitCodeFailure, err: err}
}
