package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

type Auth interface {
	Login(ctx context.Context, email, password string) (*models.Envelope, error)
}

type authAPI struct {
	sender Sender
}

func NewAuthAPI(s Sender) Auth {
	return &authAPI{sender: s}
}

func (a *authAPI) Login(ctx context.Context, email, password string) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   models.Credentials{Email: email, Password: password},
	})
}
