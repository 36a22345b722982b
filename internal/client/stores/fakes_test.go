package stores

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/client/session"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
	"github.com/stretchr/testify/require"
)

type reply struct {
	env *models.Envelope
	err error
}

// backend is a scripted stand-in for every API module. Replies are queued
// per operation; a gate, when set, holds the next call until it is closed.
type backend struct {
	mu      sync.Mutex
	replies map[string][]reply
	gates   map[string][]chan struct{}
	calls   []string
	args    map[string][]any
}

func newBackend() *backend {
	return &backend{
		replies: map[string][]reply{},
		gates:   map[string][]chan struct{}{},
		args:    map[string][]any{},
	}
}

func (b *backend) on(op string, env *models.Envelope, err error) *backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies[op] = append(b.replies[op], reply{env: env, err: err})
	return b
}

// hold makes the next call of op wait until the returned channel is closed.
func (b *backend) hold(op string) chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan struct{})
	b.gates[op] = append(b.gates[op], ch)
	return ch
}

func (b *backend) called(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (b *backend) do(ctx context.Context, op string, args ...any) (*models.Envelope, error) {
	b.mu.Lock()
	b.calls = append(b.calls, op)
	b.args[op] = args
	var gate chan struct{}
	if g := b.gates[op]; len(g) > 0 {
		gate, b.gates[op] = g[0], g[1:]
	}
	var r reply
	if q := b.replies[op]; len(q) > 0 {
		r, b.replies[op] = q[0], q[1:]
	} else {
		r = reply{env: &models.Envelope{Success: true}}
	}
	b.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return r.env, r.err
}

func (b *backend) Login(ctx context.Context, email, password string) (*models.Envelope, error) {
	return b.do(ctx, "Login", email, password)
}

func (b *backend) GetStats(ctx context.Context, days int) (*models.Envelope, error) {
	return b.do(ctx, "GetStats", days)
}

func (b *backend) ListPaymentRequests(ctx context.Context) (*models.Envelope, error) {
	return b.do(ctx, "ListPaymentRequests")
}

func (b *backend) GetPaymentRequest(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return b.do(ctx, "GetPaymentRequest", id)
}

func (b *backend) UpdatePaymentRequestStatus(ctx context.Context, id models.ID, status models.PaymentStatus) (*models.Envelope, error) {
	return b.do(ctx, "UpdatePaymentRequestStatus", id, status)
}

func (b *backend) CreateAdmin(ctx context.Context, firstName, lastName, email, password string) (*models.Envelope, error) {
	return b.do(ctx, "CreateAdmin", firstName, lastName, email, password)
}

func (b *backend) ListAdmins(ctx context.Context) (*models.Envelope, error) {
	return b.do(ctx, "ListAdmins")
}

func (b *backend) DeleteAdmin(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return b.do(ctx, "DeleteAdmin", id)
}

func (b *backend) ListPendingOnboardUsers(ctx context.Context, page, limit int) (*models.Envelope, error) {
	return b.do(ctx, "ListPendingOnboardUsers", page, limit)
}

func (b *backend) GetUserByID(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return b.do(ctx, "GetUserByID", id)
}

func (b *backend) GetUserData(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return b.do(ctx, "GetUserData", id)
}

func (b *backend) ApproveUserOnboarding(ctx context.Context, userID models.ID) (*models.Envelope, error) {
	return b.do(ctx, "ApproveUserOnboarding", userID)
}

func (b *backend) ListParents(ctx context.Context, page, limit int, search string) (*models.Envelope, error) {
	return b.do(ctx, "ListParents", page, limit, search)
}

func (b *backend) GetParent(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return b.do(ctx, "GetParent", id)
}

func (b *backend) ListTutors(ctx context.Context, page, limit int, search string) (*models.Envelope, error) {
	return b.do(ctx, "ListTutors", page, limit, search)
}

func (b *backend) GetTutor(ctx context.Context, id models.ID) (*models.Envelope, error) {
	return b.do(ctx, "GetTutor", id)
}

// memStorage is an in-memory SessionStorage.
type memStorage struct {
	mu       sync.Mutex
	sess     *models.Session
	loadErr  error
	saveErr  error
	clearErr error
	clears   int
}

func (m *memStorage) Load(context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.sess == nil {
		return nil, session.ErrNoSession
	}
	s := *m.sess
	return &s, nil
}

func (m *memStorage) Save(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = &s
	return nil
}

func (m *memStorage) SaveUser(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.sess == nil {
		m.sess = &models.Session{}
	}
	m.sess.User = u
	return nil
}

func (m *memStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.sess = nil
	return m.clearErr
}

func (m *memStorage) stored() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess
}

func okEnv(t *testing.T, data any) *models.Envelope {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return &models.Envelope{Success: true, Data: raw}
}

func rawEnv(data string) *models.Envelope {
	return &models.Envelope{Success: true, Data: json.RawMessage(data)}
}

func failEnv(message string, errs ...string) *models.Envelope {
	env := &models.Envelope{Success: false, Message: message}
	for _, e := range errs {
		env.Errors = append(env.Errors, models.ErrorItem{Message: e})
	}
	return env
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func discard() logging.Logger { return logging.Discard() }
