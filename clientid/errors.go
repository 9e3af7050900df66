package clientid

import "fmt"

// Failure to locate the agent's private data directory. Without it there is
// nowhere to persist the identifier, so the operation fails.
type DirectoryResolutionError struct {
	Err error
}

func (e DirectoryResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve application data directory: %v", e.Err)
}

// github.com/pkg/errors causer interface
func (e DirectoryResolutionError) Cause() error {
	return e.Err
}

// github.com/pkg/errors Unwrap interface
func (e DirectoryResolutionError) Unwrap() error {
	return e.Err
}

// Failure to create the data directory on first run.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Err)
}

func (e DirectoryCreationError) Cause() error {
	return e.Err
}

func (e DirectoryCreationError) Unwrap() error {
	return e.Err
}

// Failure to persist a newly generated identifier.
type FileWriteError struct {
	Path string
	Err  error
}

func (e FileWriteError) Error() string {
	return fmt.Sprintf("failed to write client ID to %s: %v", e.Path, e.Err)
}

func (e FileWriteError) Cause() error {
	return e.Err
}

func (e FileWriteError) Unwrap() error {
	return e.Err
}
