package cmd

// ExitError carries a process exit code up to main.
// An empty Message exits without printing anything.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
