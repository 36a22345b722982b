package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is returned for every non-2xx response. Envelope holds the decoded
// error body when the backend sent one, nil otherwise.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Envelope   *models.Envelope
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if detail := e.Envelope.FirstError(); detail != "" {
		return msg + ": " + detail
	}
	if e.Envelope != nil && e.Envelope.Message != "" {
		return msg + ": " + e.Envelope.Message
	}
	return msg
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}
