package main

import (
	"errors"
	"os"
	"strings"

	"github.com/flarebyte/seshat-abacus/cmd/seshat/root"
)

type exitCoder interface {
	ExitCode() int
}

// exitCodeFor defaults to 1 unless the error carries its own non-zero code.
func exitCodeFor(err error) int {
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}

// oneLine collapses an error message onto a single short line for stderr.
// No usage text, no stack traces.
func oneLine(err error) string {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		return "error"
	}
	return msg
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(oneLine(err) + "\n")
		os.Exit(exitCodeFor(err))
	}
}
