package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

type Parent interface {
	ListParents(ctx context.Context, page, limit int, search string) (*models.Envelope, error)
	GetParent(ctx context.Context, id models.ID) (*models.Envelope, error)
}

type parentAPI struct {
	sender Sender
}

func NewParentAPI(s Sender) Parent {
	return &parentAPI{sender: s}
}

func (p *parentAPI) ListParents(ctx context.Context, page, limit int, search string) (*models.Envelope, error) {
	q, err := values(PageParams{Page: page, Limit: limit, Search: search})
	if err != nil {
		return nil, err
	}
	return p.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/parents", Query: q})
}

func (p *parentAPI) GetParent(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return p.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/parents/" + segment(id)})
}
