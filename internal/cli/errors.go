package cli

import "errors"

// Sentinel errors for exit code classification.
var (
	// ErrUsage indicates invalid command usage, flags, or arguments.
	ErrUsage = errors.New("usage error")

	// ErrConfig indicates a configuration that cannot be loaded or is invalid.
	ErrConfig = errors.New("configuration error")

	// ErrInternal indicates an output or encoding failure.
	ErrInternal = errors.New("internal error")
)

// ExitCode maps an Execute error onto a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	case errors.Is(err, ErrConfig):
		return 3
	}
	return 1
}
