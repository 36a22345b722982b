package stores

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/tutoradmin/internal/client/api"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/client/session"
	"github.com/dmitrijs2005/tutoradmin/internal/common"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

var errMissingToken = errors.New("login response has no token")

// SessionStorage persists the signed-in session.
type SessionStorage interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, sess models.Session) error
	SaveUser(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// AuthState is a copy of the auth store's fields.
type AuthState struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

type AuthStore struct {
	mu      sync.RWMutex
	api     api.Auth
	storage SessionStorage
	logger  logging.Logger
	now     func() time.Time

	user         *models.User
	token        string
	initializing bool
	login        loadState
}

// NewAuthStore returns a store that reports IsLoading until InitializeAuth
// has run.
func NewAuthStore(a api.Auth, storage SessionStorage, logger logging.Logger, opts ...Option) *AuthStore {
	o := buildOptions(opts)
	return &AuthStore{
		api:          a,
		storage:      storage,
		logger:       logger.With("store", "auth"),
		now:          o.now,
		initializing: true,
	}
}

func (s *AuthStore) Snapshot() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AuthState{
		User:            cloneRef(s.user),
		Token:           s.token,
		IsAuthenticated: s.user != nil && s.token != "",
		IsLoading:       s.initializing || s.login.loading,
		Error:           s.login.err,
	}
}

// LoginUser authenticates and persists the session.
func (s *AuthStore) LoginUser(ctx context.Context, creds models.Credentials) Result[models.Session] {
	return run(ctx, &s.mu, &s.login, s.logger, action[models.Session]{
		name:        "login",
		fallback:    "Login failed",
		requireData: true,
		call: func(ctx context.Context) (*models.Envelope, error) {
			return s.api.Login(ctx, creds.Email, creds.Password)
		},
		validate: func(sess models.Session) error {
			if sess.Token == "" {
				return errMissingToken
			}
			return nil
		},
		// a superseded login never reaches storage
		effect: func(ctx context.Context, sess models.Session) error {
			return s.storage.Save(ctx, sess)
		},
		commit: func(sess models.Session) {
			s.user = &sess.User
			s.token = sess.Token
		},
	})
}

// Logout forgets the session. Calling it again is harmless.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.login.err = ""
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear stored session", "error", err)
	}
}

// InitializeAuth restores the session from storage. A stored JWT that has
// already expired is discarded.
func (s *AuthStore) InitializeAuth(ctx context.Context) {
	s.mu.Lock()
	s.initializing = true
	s.mu.Unlock()

	var user *models.User
	var token string

	sess, err := s.storage.Load(ctx)
	switch {
	case errors.Is(err, session.ErrNoSession):
	case err != nil:
		s.logger.Warn(ctx, "stored session unreadable, discarding", "error", err)
		s.clearStorage(ctx)
	case checkToken(sess.Token, s.now()) != nil:
		s.logger.Info(ctx, "discarding stored session", "error", common.ErrTokenExpired)
		s.clearStorage(ctx)
	default:
		user, token = &sess.User, sess.Token
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.initializing = false
	s.mu.Unlock()
}

// UpdateUser merges the non-empty fields of patch into the current user.
func (s *AuthStore) UpdateUser(ctx context.Context, patch models.User) Result[models.User] {
	s.mu.RLock()
	current := cloneRef(s.user)
	s.mu.RUnlock()

	if current == nil {
		return Result[models.User]{Error: "Not authenticated"}
	}

	merged := current.Merge(patch)
	if err := s.storage.SaveUser(ctx, merged); err != nil {
		s.logger.Error(ctx, "failed to persist user", "error", err)
		return Result[models.User]{Error: "Failed to update user"}
	}

	s.mu.Lock()
	if s.user != nil {
		s.user = &merged
	}
	s.mu.Unlock()
	return Result[models.User]{Success: true, Data: merged}
}

// HasRole reports whether the signed-in user has one of roles. With no roles
// it reports whether anyone is signed in.
func (s *AuthStore) HasRole(roles ...models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	return len(roles) == 0 || slices.Contains(roles, s.user.Role)
}

func (s *AuthStore) clearStorage(ctx context.Context) {
	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear stored session", "error", err)
	}
}

// checkToken inspects the exp claim of a JWT without verifying it. Tokens
// that are not JWTs, or carry no exp, never expire here.
func checkToken(token string, now time.Time) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !now.Before(exp.Time) {
		return common.ErrTokenExpired
	}
	return nil
}
