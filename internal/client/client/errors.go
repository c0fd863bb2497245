package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response of the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// maxErrorBody caps how much of an error body is read.
const maxErrorBody = 64 << 10

// newAPIError builds an APIError from resp, taking the message from a JSON
// body of the form {"message": "..."} or {"message": ["...", "..."]}.
func newAPIError(resp *http.Response) *APIError {
	e := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return e
	}

	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		if s := strings.TrimSpace(string(body)); s != "" && len(s) < 512 {
			e.Message = s
		}
		return e
	}

	var single string
	var many []string
	switch {
	case json.Unmarshal(payload.Message, &single) == nil && single != "":
		e.Message = single
	case json.Unmarshal(payload.Message, &many) == nil && len(many) > 0:
		e.Message = strings.Join(many, "; ")
	case payload.Error != "":
		e.Message = payload.Error
	}
	return e
}

// Message extracts a user-facing message from err: the API's message for
// an *APIError, a fixed text for the sentinels, err.Error() otherwise.
func Message(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrUnavailable):
		return "The server is unavailable. Please try again later."
	default:
		return err.Error()
	}
}
