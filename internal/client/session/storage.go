// Package session persists the signed-in admin's session between runs.
//
// The session lives in the client database under two keys, both JSON
// encoded: auth_token (the bearer token string) and auth_user (the user
// summary). The HTTP client reads the token before every request; the auth
// store writes both on login and removes them on logout. A 401 from the
// backend also removes them.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tutoradmin/internal/common"
	"github.com/dmitrijs2005/tutoradmin/internal/dbx"
)

// ErrNoSession is returned by Load when nothing (or only half a session) is stored.
var ErrNoSession = fmt.Errorf("no stored session: %w", common.ErrorNotFound)

type Storage struct {
	db   *sql.DB
	repo metadata.Repository
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db, repo: metadata.NewSQLiteRepository(db)}
}

// RawToken returns the stored auth_token value undecoded, or nil.
func (s *Storage) RawToken(ctx context.Context) ([]byte, error) {
	return s.repo.Get(ctx, common.StorageKeyToken)
}

// Load decodes the stored session.
func (s *Storage) Load(ctx context.Context) (*models.Session, error) {
	rawToken, err := s.repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := s.repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return nil, err
	}
	if rawToken == nil || rawUser == nil {
		return nil, ErrNoSession
	}

	var sess models.Session
	if err := json.Unmarshal(rawToken, &sess.Token); err != nil {
		return nil, fmt.Errorf("decode %s: %w", common.StorageKeyToken, err)
	}
	if err := json.Unmarshal(rawUser, &sess.User); err != nil {
		return nil, fmt.Errorf("decode %s: %w", common.StorageKeyUser, err)
	}
	return &sess, nil
}

// Save stores token and user atomically.
func (s *Storage) Save(ctx context.Context, sess models.Session) error {
	token, err := json.Marshal(sess.Token)
	if err != nil {
		return err
	}
	user, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.StorageKeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUser, user)
	})
}

// SaveUser replaces only the stored user.
func (s *Storage) SaveUser(ctx context.Context, user models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, common.StorageKeyUser, b)
}

// Clear removes both session keys. Clearing an empty storage is a no-op.
func (s *Storage) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.StorageKeyToken, common.StorageKeyUser)
}
