package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnreachable replaces raw transport errors so pages can show a
	// single user-facing "server unreachable" message.
	ErrUnreachable = errors.New("unable to connect to server")

	// ErrAuthExpired is returned on 401/403 after the session login flag
	// has been cleared.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrNotFound is returned on 404.
	ErrNotFound = errors.New("not found")
)

// StatusError carries a non-2xx backend response body.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// ValidationMessage digs a human-readable message out of a backend error
// response. Django reports form failures as {"non_field_errors": [...]} or
// {"error": "..."}; fallback is the supplied default.
func ValidationMessage(err error, fallback string) string {
	var se *StatusError
	if !errors.As(err, &se) {
		return fallback
	}
	var body struct {
		NonFieldErrors []string `json:"non_field_errors"`
		Detail         string   `json:"detail"`
		Error          string   `json:"error"`
	}
	if json.Unmarshal(se.Body, &body) != nil {
		return fallback
	}
	switch {
	case len(body.NonFieldErrors) > 0:
		return body.NonFieldErrors[0]
	case body.Detail != "":
		return body.Detail
	case body.Error != "":
		return body.Error
	}
	return fallback
}
