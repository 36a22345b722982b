// Package models defines the records exchanged with the tutoring marketplace
// backend and held by the client-side stores.
package models

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// ErrorItem is a single validation failure reported by the backend.
type ErrorItem struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Envelope is the uniform shape wrapping every backend response.
// Data is kept raw so that stores can decode it into the type they expect.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []ErrorItem     `json:"errors,omitempty"`
}

// FirstError returns the message of the first validation error, if any.
func (e *Envelope) FirstError() string {
	if e == nil {
		return ""
	}
	for _, item := range e.Errors {
		if item.Message != "" {
			return item.Message
		}
	}
	return ""
}

// ID identifies a backend resource. The backend is not consistent about
// sending ids as strings or numbers, so both are accepted.
type ID string

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts "7", 7 and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*id = ""
		return nil
	}
	if f, ok := raw.(float64); ok {
		// avoid "7e+00"-style rendering of integral ids
		if f == float64(int64(f)) {
			*id = ID(cast.ToString(int64(f)))
			return nil
		}
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", string(b), err)
	}
	*id = ID(s)
	return nil
}

// Pagination describes the position of a page within a listing.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit,omitempty"`
	TotalPages  int  `json:"totalPages"`
	Total       int  `json:"total"`
	HasNextPage bool `json:"hasNextPage,omitempty"`
	HasPrevPage bool `json:"hasPrevPage,omitempty"`
}

// Page is the data payload of every paginated endpoint.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
