package sentiment

import "errors"

var (
	// ErrModelUnavailable is returned when the classifier failed to load at startup.
	ErrModelUnavailable = errors.New("sentiment model is not loaded")
	// ErrInferenceFailed wraps any error raised by the classifier itself.
	ErrInferenceFailed = errors.New("inference failed")
	// ErrInvalidInput marks requests that could not be decoded into a review.
	ErrInvalidInput = errors.New("invalid input")
)
