package batch

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrProcessorRequired is returned when a Runner is built without a processor
	ErrProcessorRequired = errors.New("processor required")

	// ErrNoIntakeFiles is returned when the intake directory holds no loadable files
	ErrNoIntakeFiles = errors.New("no intake files found")
)
