package tool

import (
	"fmt"
	"strings"
)

// ExitError reports a tool that ran but exited non-zero. It is only
// produced in strict mode; by default such failures are tolerated.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
	if line := FirstLine(e.Stderr); line != "" {
		msg += ": " + line
	}
	return msg
}

// Failed reports whether res represents any kind of failure.
func Failed(res Result) bool {
	return res.Err != nil || res.ExitCode != 0
}

// Settle applies the tool failure policy and is the single place where a
// Result becomes an error:
//
//   - the process could not be started: always an error
//   - non-zero exit, strict: *ExitError
//   - non-zero exit, not strict: ignored; the output file is left as the
//     tool wrote it (possibly empty)
func Settle(strict bool, cmd Command, res Result) error {
	if res.Err != nil {
		return fmt.Errorf("run %s: %w", cmd.Name, res.Err)
	}
	if res.ExitCode != 0 && strict {
		return &ExitError{Command: cmd.Name, Code: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// FirstLine returns the first non-blank line of s, trimmed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
