// Package api maps each logical backend operation to a single HTTP call with
// a fixed method, path and query shape. Nothing here inspects the response:
// every function returns the envelope, or the error, exactly as the client
// produced it.
package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/google/go-querystring/query"
)

// Sender is the part of the HTTP client the API modules use.
type Sender interface {
	Send(ctx context.Context, r client.Request) (*models.Envelope, error)
}

// PageParams are the pagination and search parameters of listing endpoints.
type PageParams struct {
	Page   int    `url:"page,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	Search string `url:"search,omitempty"`
}

type statsParams struct {
	Days int `url:"days,omitempty"`
}

type statusBody struct {
	Status models.PaymentStatus `json:"status"`
}

func values(params any) (url.Values, error) {
	v, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	return v, nil
}

// segment escapes a single path element.
func segment(id models.ID) string {
	return url.PathEscape(id.String())
}
