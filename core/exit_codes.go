package core

// Process exit codes. Kept distinct so shell wrappers and the service
// manager can tell configuration problems from runtime failures.
const (
	// ExitCodeSuccess indicates a clean run.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a runtime failure.
	ExitCodeError = 1
	// ExitCodeConfigError indicates invalid or missing configuration.
	ExitCodeConfigError = 2
	// ExitCodeUsageError indicates bad command-line arguments.
	ExitCodeUsageError = 64
)
