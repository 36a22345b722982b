// Package stores holds the process-wide state containers of the dashboard:
// auth, admin, parent and tutor.
//
// Every async action follows the same protocol. It marks its concern as
// loading and clears that concern's error, calls the API module, then either
// commits the decoded data or records a human readable message. Actions never
// return Go errors. The outcome is always a Result.
//
// Stores are safe for concurrent use. Overlapping calls of the same concern
// are fenced: only the most recently started call commits data and settles
// the concern's loading and error flags; older calls still hand their own
// Result back to their caller.
package stores

import (
	"errors"

	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

// Result is the tagged outcome of a store action. Exactly one of Data (with
// Success set) or Error is meaningful.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
}

// Status is the loading/error pair of one store concern.
type Status struct {
	IsLoading bool
	Error     string
}

// ErrorMessage picks the message shown for a failed call: the first
// validation error, then the envelope message, then fallback. An *APIError
// contributes the envelope it decoded from the error response.
func ErrorMessage(env *models.Envelope, err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Envelope != nil {
		env = apiErr.Envelope
	}
	if msg := env.FirstError(); msg != "" {
		return msg
	}
	if env != nil && env.Message != "" {
		return env.Message
	}
	return fallback
}
