package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps transport-level failures (DNS, connection refused,
	// timeout) where the request never produced an HTTP status.
	ErrNetwork = errors.New("panel unreachable")

	// ErrMalformedResponse is returned when a 2xx response body fails to
	// parse as JSON or lacks the expected shape.
	ErrMalformedResponse = errors.New("malformed panel response")

	// ErrUserNotFound is returned by FindUserByEmail when no panel
	// account matches the email. Accounts are never auto-created.
	ErrUserNotFound = errors.New("panel user not found")
)

// RemoteAPIError is a non-2xx response from the panel. Detail carries the
// first structured error detail from the response body when present.
type RemoteAPIError struct {
	Status int
	Detail string
}

func (e *RemoteAPIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("API Error: %d", e.Status)
}

// IsRemoteAPIError reports whether err is a [RemoteAPIError] and returns it.
func IsRemoteAPIError(err error) (*RemoteAPIError, bool) {
	var apiErr *RemoteAPIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
