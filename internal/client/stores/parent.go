package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/tutoradmin/internal/client/api"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
	"github.com/dmitrijs2005/tutoradmin/internal/netx"
)

type ParentState struct {
	Parents        []models.ParentSummary
	Pagination     models.Pagination
	SelectedParent *models.ParentDetail
	ListStatus     Status
	DetailStatus   Status
}

type ParentStore struct {
	mu           sync.RWMutex
	api          api.Parent
	logger       logging.Logger
	documentsURL string

	dir directory[models.ParentSummary, models.ParentDetail]
}

// NewParentStore returns a store whose document links are built under documentsURL.
func NewParentStore(a api.Parent, documentsURL string, logger logging.Logger) *ParentStore {
	return &ParentStore{
		api:          a,
		logger:       logger.With("store", "parent"),
		documentsURL: documentsURL,
		dir:          directory[models.ParentSummary, models.ParentDetail]{noun: "parent"},
	}
}

func (s *ParentStore) Snapshot() ParentState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ParentState{
		Parents:        slices.Clone(s.dir.items),
		Pagination:     s.dir.pagination,
		SelectedParent: cloneRef(s.dir.selected),
		ListStatus:     s.dir.list.status(),
		DetailStatus:   s.dir.detail.status(),
	}
}

// FetchParents replaces the loaded page. An empty search lists everyone.
func (s *ParentStore) FetchParents(ctx context.Context, page, limit int, search string) Result[models.Page[models.ParentSummary]] {
	return s.dir.fetchPage(ctx, &s.mu, s.logger, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.ListParents(ctx, page, limit, search)
	})
}

func (s *ParentStore) FetchParent(ctx context.Context, id models.ID) Result[models.ParentDetail] {
	return s.dir.fetchDetail(ctx, &s.mu, s.logger, func(ctx context.Context) (*models.Envelope, error) {
		return s.api.GetParent(ctx, id)
	})
}

func (s *ParentStore) ClearSelected() {
	s.mu.Lock()
	s.dir.selected = nil
	s.mu.Unlock()
}

// FilterParents narrows the loaded page by name, email or phone.
func (s *ParentStore) FilterParents(query string) []models.ParentSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir.filter(query, func(p models.ParentSummary) []string {
		return []string{p.FullName(), p.Email, p.Phone}
	})
}

// DocumentURL returns the download link of a parent document, or "" for an
// empty file name.
func (s *ParentStore) DocumentURL(fileName string) string {
	return netx.JoinURL(s.documentsURL, fileName)
}
