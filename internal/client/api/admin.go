package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

// Admin covers the back-office endpoints: dashboard stats, payment request
// review, admin accounts and onboarding approval.
type Admin interface {
	GetStats(ctx context.Context, days int) (*models.Envelope, error)
	ListPaymentRequests(ctx context.Context) (*models.Envelope, error)
	GetPaymentRequest(ctx context.Context, id models.ID) (*models.Envelope, error)
	UpdatePaymentRequestStatus(ctx context.Context, id models.ID, status models.PaymentStatus) (*models.Envelope, error)
	CreateAdmin(ctx context.Context, firstName, lastName, email, password string) (*models.Envelope, error)
	ListAdmins(ctx context.Context) (*models.Envelope, error)
	DeleteAdmin(ctx context.Context, id models.ID) (*models.Envelope, error)
	ListPendingOnboardUsers(ctx context.Context, page, limit int) (*models.Envelope, error)
	GetUserByID(ctx context.Context, id models.ID) (*models.Envelope, error)
	GetUserData(ctx context.Context, id models.ID) (*models.Envelope, error)
	ApproveUserOnboarding(ctx context.Context, userID models.ID) (*models.Envelope, error)
}

type adminAPI struct {
	sender Sender
}

func NewAdminAPI(s Sender) Admin {
	return &adminAPI{sender: s}
}

// GetStats asks for totals over the last days days; zero lets the backend pick.
func (a *adminAPI) GetStats(ctx context.Context, days int) (*models.Envelope, error) {
	q, err := values(statsParams{Days: days})
	if err != nil {
		return nil, err
	}
	return a.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/stats", Query: q})
}

func (a *adminAPI) ListPaymentRequests(ctx context.Context) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/payment-requests"})
}

func (a *adminAPI) GetPaymentRequest(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/payment-requests/" + segment(id)})
}

func (a *adminAPI) UpdatePaymentRequestStatus(ctx context.Context, id models.ID, status models.PaymentStatus) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   "/admin/payment-requests/" + segment(id) + "/status",
		Body:   statusBody{Status: status},
	})
}

func (a *adminAPI) CreateAdmin(ctx context.Context, firstName, lastName, email, password string) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/admin/admins",
		Body:   models.NewAdmin{FirstName: firstName, LastName: lastName, Email: email, Password: password},
	})
}

func (a *adminAPI) ListAdmins(ctx context.Context) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/admins"})
}

func (a *adminAPI) DeleteAdmin(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{Method: http.MethodDelete, Path: "/admin/admins/" + segment(id)})
}

func (a *adminAPI) ListPendingOnboardUsers(ctx context.Context, page, limit int) (*models.Envelope, error) {
	q, err := values(PageParams{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}
	return a.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/onboarding/pending", Query: q})
}

func (a *adminAPI) GetUserByID(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/users/" + segment(id)})
}

func (a *adminAPI) GetUserData(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{Method: http.MethodGet, Path: "/admin/users/" + segment(id) + "/data"})
}

func (a *adminAPI) ApproveUserOnboarding(ctx context.Context, userID models.ID) (*models.Envelope, error) {
	return a.sender.Send(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   "/admin/users/" + segment(userID) + "/approve-onboarding",
	})
}
