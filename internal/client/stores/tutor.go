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
	"github.com/dmitrijs2005/tutoradmin/internal/netx"
)

type TutorState struct {
	Tutors        []models.TutorSummary
	Pagination    models.Pagination
	SelectedTutor *models.TutorDetail
	ListStatus    Status
	DetailStatus  Status

	PaymentRequests        []models.PaymentRequest
	SelectedPaymentRequest *models.PaymentRequest
	PaymentRequestsStatus  Status
	PaymentRequestStatus   Status
	PaymentUpdateStatus    Status
}

type TutorStore struct {
	mu           sync.RWMutex
	api          api.Tutor
	logger       logging.Logger
	now          func() time.Time
	documentsURL string

	dir      directory[models.TutorSummary, models.TutorDetail]
	payments paymentBook
}

func NewTutorStore(a api.Tutor, documentsURL string, logger logging.Logger, opts ...Option) *TutorStore {
	o := buildOptions(opts)
	return &TutorStore{
		api:          a,
		logger:       logger.With("store", "tutor"),
		now:          o.now,
		documentsURL: documentsURL,
		dir:          directory[models.TutorSummary, models.TutorDetail]{noun: "tutor"},
	}
}

func (s *TutorStore) Snapshot() TutorState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments, selected := s.payments.snapshot()
	return TutorState{
		Tutors:                 slices.Clone(s.dir.items),
		Pagination:             s.dir.pagination,
		SelectedTutor:          cloneRef(s.dir.selected),
		ListStatus:             s.dir.list.status(),
		DetailStatus:           s.dir.detail.status(),
		PaymentRequests:        payments,
		SelectedPaymentRequest: selected,
		PaymentRequestsStatus:  s.payments.list.status(),
		PaymentRequestStatus:   s.payments.detail.status(),
		PaymentUpdateStatus:    s.payments.update.status(),
	}
}

// FetchTutors replaces the loaded page. An empty search lists everyone.
func (s *TutorStore) FetchTutors(ctx context.Context, page, limit int, search string) Result[models.Page[models.TutorSummary]] {
	return s.dir.fetchPage(ctx, &s.mu, s.logger, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.ListTutors(ctx, page, limit, search)
	})
}

func (s *TutorStore) FetchTutor(ctx context.Context, id models.ID) Result[models.TutorDetail] {
	return s.dir.fetchDetail(ctx, &s.mu, s.logger, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.GetTutor(ctx, id)
	})
}

func (s *TutorStore) ClearSelected() {
	s.mu.Lock()
	s.dir.selected = nil
	s.mu.Unlock()
}

// FilterTutors narrows the loaded page by name, email, phone or subject.
func (s *TutorStore) FilterTutors(query string) []models.TutorSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir.filter(query, func(t models.TutorSummary) []string {
		return append([]string{t.FullName(), t.Email, t.Phone}, t.Subjects...)
	})
}

func (s *TutorStore) DocumentURL(fileName string) string {
	return netx.JoinURL(s.documentsURL, fileName)
}

func (s *TutorStore) FetchPaymentRequests(ctx context.Context) Result[[]models.PaymentRequest] {
	return s.payments.fetchAll(ctx, &s.mu, s.logger, s.api.ListPaymentRequests)
}

func (s *TutorStore) FetchPaymentRequest(ctx context.Context, id models.ID) Result[models.PaymentRequest] {
	return s.payments.fetchOne(ctx, &s.mu, s.logger, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.GetPaymentRequest(ctx, id)
	})
}

func (s *TutorStore) UpdatePaymentStatus(ctx context.Context, id models.ID, status models.PaymentStatus) Result[json.RawMessage] {
	return s.payments.updateStatus(ctx, &s.mu, s.logger, s.now, id, status, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.UpdatePaymentRequestStatus(ctx, id, status)
	})
}
