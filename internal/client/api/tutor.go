package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

// Tutor covers tutor accounts and the tutor-scoped payment request endpoints.
type Tutor interface {
	ListTutors(ctx context.Context, page, limit int, search string) (*models.Envelope, error)
	GetTutor(ctx context.Context, id models.ID) (*models.Envelope, error)
	ListPaymentRequests(ctx context.Context) (*models.Envelope, error)
	GetPaymentRequest(ctx context.Context, id models.ID) (*models.Envelope, error)
	UpdatePaymentRequestStatus(ctx context.Context, id models.ID, status models.PaymentStatus) (*models.Envelope, error)
}

type tutorAPI struct {
	sender Sender
}

func NewTutorAPI(s Sender) Tutor {
	return &tutorAPI{sender: s}
}

func (t *tutorAPI) ListTutors(ctx context.Context, page, limit int, search string) (*models.Envelope, error) {
	q, err := values(PageParams{Page: page, Limit: limit, Search: search})
	if err != nil {
		return nil, err
	}
	return t.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/tutors", Query: q})
}

func (t *tutorAPI) GetTutor(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return t.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/tutors/" + segment(id)})
}

func (t *tutorAPI) ListPaymentRequests(ctx context.Context) (*models.Envelope, error) {
	return t.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/tutors/payment-requests"})
}

func (t *tutorAPI) GetPaymentRequest(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return t.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/tutors/payment-requests/" + segment(id)})
}

func (t *tutorAPI) UpdatePaymentRequestStatus(ctx context.Context, id models.ID, status models.PaymentStatus) (*models.Envelope, error) {
	return t.sender.Send(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   "/admin/tutors/payment-requests/" + segment(id) + "/status",
		Body:   statusBody{Status: status},
	})
}
