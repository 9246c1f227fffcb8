// Package cmd provides CLI command implementations.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInputError indicates a required field was missing or a supplied
	// value failed validation.
	ExitInputError = 2

	// ExitIOError indicates a filesystem operation failed.
	ExitIOError = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInputError:
		return "Input Error"
	case ExitIOError:
		return "I/O Error"
	default:
		return "Unknown"
	}
}
