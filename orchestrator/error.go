package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// processError is raised when an external command exits non-zero. Stderr is
// kept exactly as the process wrote it.
type processError struct {
	error
	ExitCode int
	Stderr   string
}

type ArchiveError processError
type EncryptionError processError

func NewArchiveError(exitCode int, stderr string) ArchiveError {
	return ArchiveError{
		error:    errors.Errorf("archiving failed with exit code %d: %s", exitCode, stderr),
		ExitCode: exitCode,
		Stderr:   stderr,
	}
}

func NewEncryptionError(exitCode int, stderr string) EncryptionError {
	return EncryptionError{
		error:    errors.Errorf("encryption failed with exit code %d: %s", exitCode, stderr),
		ExitCode: exitCode,
		Stderr:   stderr,
	}
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", err)
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) ContainsArchiveError() bool {
	for _, e := range err {
		if _, ok := errors.Cause(e).(ArchiveError); ok {
			return true
		}
	}
	return false
}

func (err Error) ContainsEncryptionError() bool {
	for _, e := range err {
		if _, ok := errors.Cause(e).(EncryptionError); ok {
			return true
		}
	}
	return false
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

// BuildExitCode sets one bit per kind of failure: 4 for archiving, 8 for
// encryption and 1 for everything else.
func BuildExitCode(errs Error) int {
	exitCode := 0

	for _, err := range errs {
		switch errors.Cause(err).(type) {
		case ArchiveError:
			exitCode = exitCode | 1<<2
		case EncryptionError:
			exitCode = exitCode | 1<<3
		default:
			exitCode = exitCode | 1
		}
	}

	return exitCode
}

// ProcessError returns the exit code, the message for the user and, for
// fatal errors, the message with stack traces for the error log.
func ProcessError(errs Error) (int, string, string) {
	if errs.IsNil() {
		return 0, "", ""
	}
	return BuildExitCode(errs), errs.Error(), errs.PrettyError(true)
}
