package stores

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/tutoradmin/internal/client/api"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
)

// AdminState is a copy of the admin store's fields. Each concern carries its
// own Status.
type AdminState struct {
	Stats       *models.Stats
	StatsStatus Status

	PaymentRequests        []models.PaymentRequest
	SelectedPaymentRequest *models.PaymentRequest
	PaymentRequestsStatus  Status
	PaymentRequestStatus   Status
	PaymentUpdateStatus    Status

	Admins              []models.Admin
	AdminsStatus        Status
	AdminMutationStatus Status

	PendingUsers      []models.PendingUser
	PendingPagination models.Pagination
	PendingStatus     Status
	ApprovalStatus    Status

	SelectedUser     *models.User
	SelectedUserData *models.UserData
	UserStatus       Status
}

type AdminStore struct {
	mu     sync.RWMutex
	api    api.Admin
	logger logging.Logger
	now    func() time.Time

	stats      *models.Stats
	statsState loadState

	payments paymentBook

	admins        []models.Admin
	adminsState   loadState
	adminMutation loadState

	pending           []models.PendingUser
	pendingPagination models.Pagination
	pendingState      loadState
	approval          loadState

	selectedUser     *models.User
	selectedUserData *models.UserData
	userState        loadState
}

func NewAdminStore(a api.Admin, logger logging.Logger, opts ...Option) *AdminStore {
	o := buildOptions(opts)
	return &AdminStore{api: a, logger: logger.With("store", "admin"), now: o.now}
}

func (s *AdminStore) Snapshot() AdminState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments, selected := s.payments.snapshot()
	return AdminState{
		Stats:                  cloneRef(s.stats),
		StatsStatus:            s.statsState.status(),
		PaymentRequests:        payments,
		SelectedPaymentRequest: selected,
		PaymentRequestsStatus:  s.payments.list.status(),
		PaymentRequestStatus:   s.payments.detail.status(),
		PaymentUpdateStatus:    s.payments.update.status(),
		Admins:                 slices.Clone(s.admins),
		AdminsStatus:           s.adminsState.status(),
		AdminMutationStatus:    s.adminMutation.status(),
		PendingUsers:           slices.Clone(s.pending),
		PendingPagination:      s.pendingPagination,
		PendingStatus:          s.pendingState.status(),
		ApprovalStatus:         s.approval.status(),
		SelectedUser:           cloneRef(s.selectedUser),
		SelectedUserData:       cloneRef(s.selectedUserData),
		UserStatus:             s.userState.status(),
	}
}

// FetchStats loads dashboard totals for the last days days.
func (s *AdminStore) FetchStats(ctx context.Context, days int) Result[models.Stats] {
	return run(ctx, &s.mu, &s.statsState, s.logger, action[models.Stats]{
		name:        "fetch stats",
		fallback:    "Failed to fetch stats",
		requireData: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.GetStats(ctx, days)
		},
		commit: func(st models.Stats) {
			s.stats = &st
		},
	})
}

func (s *AdminStore) FetchPaymentRequests(ctx context.Context) Result[[]models.PaymentRequest] {
	return s.payments.fetchAll(ctx, &s.mu, s.logger, s.api.ListPaymentRequests)
}

// FetchPaymentRequest loads one request and makes it the selected one.
func (s *AdminStore) FetchPaymentRequest(ctx context.Context, id models.ID) Result[models.PaymentRequest] {
	return s.payments.fetchOne(ctx, &s.mu, s.logger, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.GetPaymentRequest(ctx, id)
	})
}

// UpdatePaymentStatus changes the status on the backend and patches the
// local copies.
func (s *AdminStore) UpdatePaymentStatus(ctx context.Context, id models.ID, status models.PaymentStatus) Result[json.RawMessage] {
	return s.payments.updateStatus(ctx, &s.mu, s.logger, s.now, id, status, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.UpdatePaymentRequestStatus(ctx, id, status)
	})
}

func (s *AdminStore) FetchAdmins(ctx context.Context) Result[[]models.Admin] {
	res := run(ctx, &s.mu, &s.adminsState, s.logger, action[list[models.Admin]]{
		name:     "fetch admins",
		fallback: "Failed to fetch admins",
		call:     s.api.ListAdmins,
		commit: func(admins list[models.Admin]) {
			s.admins = admins
		},
	})
	return Result[[]models.Admin]{Success: res.Success, Data: res.Data, Error: res.Error}
}

// CreateAdmin creates an account and adds it to the loaded list. A list
// fetched meanwhile may already hold it; that entry is replaced.
func (s *AdminStore) CreateAdmin(ctx context.Context, in models.NewAdmin) Result[models.Admin] {
	return run(ctx, &s.mu, &s.adminMutation, s.logger, action[models.Admin]{
		name:     "create admin",
		fallback: "Failed to create admin",
		mutation: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.CreateAdmin(ctx, in.FirstName, in.LastName, in.Email, in.Password)
		},
		commit: func(created models.Admin) {
			if created.Email == "" {
				created.FirstName, created.LastName, created.Email = in.FirstName, in.LastName, in.Email
			}
			i := slices.IndexFunc(s.admins, func(a models.Admin) bool {
				if created.ID != "" {
					return a.ID == created.ID
				}
				return a.Email == created.Email
			})
			if i >= 0 {
				s.admins[i] = created
				return
			}
			s.admins = append(s.admins, created)
		},
	})
}

// DeleteAdmin deletes an account and drops it from the loaded list.
func (s *AdminStore) DeleteAdmin(ctx context.Context, id models.ID) Result[json.RawMessage] {
	return run(ctx, &s.mu, &s.adminMutation, s.logger, action[json.RawMessage]{
		name:     "delete admin",
		fallback: "Failed to delete admin",
		mutation: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.DeleteAdmin(ctx, id)
		},
		commit: func(json.RawMessage) {
			s.admins = slices.DeleteFunc(s.admins, func(a models.Admin) bool { return a.ID == id })
		},
	})
}

// FetchPendingUsers loads one page of accounts awaiting onboarding approval.
func (s *AdminStore) FetchPendingUsers(ctx context.Context, page, limit int) Result[models.Page[models.PendingUser]] {
	return run(ctx, &s.mu, &s.pendingState, s.logger, action[models.Page[models.PendingUser]]{
		name:        "fetch pending users",
		fallback:    "Failed to fetch pending users",
		requireData: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.ListPendingOnboardUsers(ctx, page, limit)
		},
		commit: func(p models.Page[models.PendingUser]) {
			s.pending = p.Items
			s.pendingPagination = p.Pagination
		},
	})
}

// ApproveOnboarding approves a pending account and removes it from the
// loaded page.
func (s *AdminStore) ApproveOnboarding(ctx context.Context, userID models.ID) Result[json.RawMessage] {
	return run(ctx, &s.mu, &s.approval, s.logger, action[json.RawMessage]{
		name:     "approve onboarding",
		fallback: "Failed to approve onboarding",
		mutation: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.ApproveUserOnboarding(ctx, userID)
		},
		commit: func(json.RawMessage) {
			before := len(s.pending)
			s.pending = slices.DeleteFunc(s.pending, func(u models.PendingUser) bool { return u.ID == userID })
			if len(s.pending) < before && s.pendingPagination.Total > 0 {
				s.pendingPagination.Total--
			}
		},
	})
}

func (s *AdminStore) FetchUser(ctx context.Context, id models.ID) Result[models.User] {
	return run(ctx, &s.mu, &s.userState, s.logger, action[models.User]{
		name:        "fetch user",
		fallback:    "Failed to fetch user",
		requireData: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.GetUserByID(ctx, id)
		},
		commit: func(u models.User) {
			s.selectedUser = &u
		},
	})
}

// FetchUserData loads the full record of an account, including the parent
// or tutor aggregate.
func (s *AdminStore) FetchUserData(ctx context.Context, id models.ID) Result[models.UserData] {
	return run(ctx, &s.mu, &s.userState, s.logger, action[models.UserData]{
		name:        "fetch user data",
		fallback:    "Failed to fetch user data",
		requireData: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.GetUserData(ctx, id)
		},
		commit: func(d models.UserData) {
			s.selectedUserData = &d
		},
	})
}
