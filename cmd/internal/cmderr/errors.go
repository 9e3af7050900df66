package cmderr

import "fmt"

// Wrapper for all agent generated errors vs CLI parsing errors.
// Used to determine whether to print usage message on error.
type AgentErr struct {
	Err error
}

func (a AgentErr) Error() string {
	return a.Err.Error()
}

// github.com/pkg/errors causer interface
func (a AgentErr) Cause() error {
	return a.Err
}

// github.com/pkg/errors Unwrap interface
func (a AgentErr) Unwrap() error {
	return a.Err
}

// Carries an explicit process exit code through Execute.
type ExitError struct {
	ExitCode int
	Err      error
}

func (ee ExitError) Error() string {
	return fmt.Sprintf("exit with code %d: %v", ee.ExitCode, ee.Err)
}

func (ee ExitError) Unwrap() error {
	return ee.Err
}
