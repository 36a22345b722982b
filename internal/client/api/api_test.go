package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	got []client.Request
	env *models.Envelope
	err error
}

func (f *fakeSender) Send(_ context.Context, r client.Request) (*models.Envelope, error) {
	f.got = append(f.got, r)
	return f.env, f.err
}

func TestModules_RequestShapes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func(s Sender) error
		wantMethod string
		wantPath   string
		wantQuery  url.Values
		wantBody   any
	}{
		{
			name:       "auth login",
			call:       func(s Sender) error { _, err := NewAuthAPI(s).Login(ctx, "a@x.io", "pw"); return err },
			wantMethod: http.MethodPost,
			wantPath:   "/auth/login",
			wantBody:   models.Credentials{Email: "a@x.io", Password: "pw"},
		},
		{
			name:       "admin stats with days",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).GetStats(ctx, 30); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/stats",
			wantQuery:  url.Values{"days": {"30"}},
		},
		{
			name:       "admin stats default window",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).GetStats(ctx, 0); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/stats",
			wantQuery:  url.Values{},
		},
		{
			name:       "admin list payment requests",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).ListPaymentRequests(ctx); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/payment-requests",
		},
		{
			name:       "admin get payment request",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).GetPaymentRequest(ctx, "7"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/payment-requests/7",
		},
		{
			name: "admin update payment status",
			call: func(s Sender) error {
				_, err := NewAdminAPI(s).UpdatePaymentRequestStatus(ctx, "7", models.PaymentStatusPaid)
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/admin/payment-requests/7/status",
			wantBody:   statusBody{Status: models.PaymentStatusPaid},
		},
		{
			name: "admin create admin",
			call: func(s Sender) error {
				_, err := NewAdminAPI(s).CreateAdmin(ctx, "Ann", "Lee", "ann@x.io", "secret")
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/admins",
			wantBody:   models.NewAdmin{FirstName: "Ann", LastName: "Lee", Email: "ann@x.io", Password: "secret"},
		},
		{
			name:       "admin list admins",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).ListAdmins(ctx); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/admins",
		},
		{
			name:       "admin delete admin",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).DeleteAdmin(ctx, "3"); return err },
			wantMethod: http.MethodDelete,
			wantPath:   "/admin/admins/3",
		},
		{
			name:       "admin pending onboarding",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).ListPendingOnboardUsers(ctx, 2, 10); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/onboarding/pending",
			wantQuery:  url.Values{"page": {"2"}, "limit": {"10"}},
		},
		{
			name:       "admin get user",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).GetUserByID(ctx, "u1"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/users/u1",
		},
		{
			name:       "admin get user data",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).GetUserData(ctx, "u1"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/users/u1/data",
		},
		{
			name:       "admin approve onboarding",
			call:       func(s Sender) error { _, err := NewAdminAPI(s).ApproveUserOnboarding(ctx, "u1"); return err },
			wantMethod: http.MethodPatch,
			wantPath:   "/admin/users/u1/approve-onboarding",
		},
		{
			name:       "parent list",
			call:       func(s Sender) error { _, err := NewParentAPI(s).ListParents(ctx, 1, 20, "smith"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/parents",
			wantQuery:  url.Values{"page": {"1"}, "limit": {"20"}, "search": {"smith"}},
		},
		{
			name:       "parent list without search",
			call:       func(s Sender) error { _, err := NewParentAPI(s).ListParents(ctx, 1, 20, ""); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/parents",
			wantQuery:  url.Values{"page": {"1"}, "limit": {"20"}},
		},
		{
			name:       "parent get",
			call:       func(s Sender) error { _, err := NewParentAPI(s).GetParent(ctx, "p9"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/parents/p9",
		},
		{
			name:       "tutor list",
			call:       func(s Sender) error { _, err := NewTutorAPI(s).ListTutors(ctx, 2, 20, ""); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/tutors",
			wantQuery:  url.Values{"page": {"2"}, "limit": {"20"}},
		},
		{
			name:       "tutor get",
			call:       func(s Sender) error { _, err := NewTutorAPI(s).GetTutor(ctx, "t1"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/tutors/t1",
		},
		{
			name:       "tutor list payment requests",
			call:       func(s Sender) error { _, err := NewTutorAPI(s).ListPaymentRequests(ctx); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/tutors/payment-requests",
		},
		{
			name:       "tutor get payment request",
			call:       func(s Sender) error { _, err := NewTutorAPI(s).GetPaymentRequest(ctx, "5"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/admin/tutors/payment-requests/5",
		},
		{
			name: "tutor update payment status",
			call: func(s Sender) error {
				_, err := NewTutorAPI(s).UpdatePaymentRequestStatus(ctx, "5", models.PaymentStatusRejected)
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/admin/tutors/payment-requests/5/status",
			wantBody:   statusBody{Status: models.PaymentStatusRejected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSender{env: &models.Envelope{Success: true}}
			require.NoError(t, tt.call(s))
			require.Len(t, s.got, 1)

			r := s.got[0]
			assert.Equal(t, tt.wantMethod, r.Method)
			assert.Equal(t, tt.wantPath, r.Path)
			if tt.wantQuery != nil {
				assert.Equal(t, tt.wantQuery, r.Query)
			} else {
				assert.Empty(t, r.Query)
			}
			assert.Equal(t, tt.wantBody, r.Body)
		})
	}
}

func TestModules_EscapesPathSegments(t *testing.T) {
	s := &fakeSender{}
	_, _ = NewParentAPI(s).GetParent(context.Background(), "a/b c")

	require.Len(t, s.got, 1)
	assert.Equal(t, "/admin/parents/a%2Fb%20c", s.got[0].Path)
}

func TestModules_PassThroughErrors(t *testing.T) {
	boom := errors.New("boom")
	env := &models.Envelope{Success: false, Message: "nope"}
	s := &fakeSender{env: env, err: boom}

	got, err := NewTutorAPI(s).GetTutor(context.Background(), "1")
	assert.Same(t, env, got)
	assert.ErrorIs(t, err, boom)
}
