package root

import (
	"io"
	"strings"
)

type exitCoder interface {
	ExitCode() int
}

// Main runs greet with args and returns the process exit code. Failures are
// reported as one short line on stderr, without usage or stack traces.
func Main(args []string, stderr io.Writer) int {
	err := Execute(args)
	if err == nil {
		return 0
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(stderr, msg+"\n")
	if ec, ok := err.(exitCoder); ok {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}
