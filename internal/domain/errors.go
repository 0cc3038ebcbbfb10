package domain

import "errors"

// NetworkError represents a transport-level failure while talking to a remote endpoint
type NetworkError struct {
	Op  string // Operation that failed (e.g., "fetch", "download")
	Err error  // Underlying error
}

func (e *NetworkError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new network error
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// PayloadError represents a response body that could not be decoded
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return "decode payload: " + e.Err.Error()
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config error [" + e.Field + "]: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var (
	// ErrFetchFailed is returned when the markets endpoint answers with a non-2xx status.
	// The text is shown to the user as-is.
	ErrFetchFailed = errors.New("Failed to fetch data") //nolint:staticcheck // user-facing message

	// ErrInvalidSortKey is returned when a sort is requested on an unknown column
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// UserMessage converts a load failure into the single line shown to the user.
// Network and payload failures surface the underlying error's own text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrFetchFailed) {
		return ErrFetchFailed.Error()
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Err.Error()
	}
	var payloadErr *PayloadError
	if errors.As(err, &payloadErr) {
		return payloadErr.Err.Error()
	}
	return err.Error()
}
