package stores

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
)

// directory is a paginated account listing with an independently fetched
// detail record. Parents and tutors both use it.
type directory[S, D any] struct {
	noun       string
	items      []S
	pagination models.Pagination
	selected   *D
	list       loadState
	detail     loadState
}

// fetchPage replaces the current page and pagination.
func (d *directory[S, D]) fetchPage(ctx context.Context, mu *sync.RWMutex, logger logging.Logger,
	call func(context.Context) (*models.Envelope, error),
) Result[models.Page[S]] {
	return run(ctx, mu, &d.list, logger, action[models.Page[S]]{
		name:        "fetch " + d.noun + "s",
		fallback:    "Failed to fetch " + d.noun + "s",
		call:        call,
		requireData: true,
		commit: func(p models.Page[S]) {
			d.items = p.Items
			d.pagination = p.Pagination
		},
	})
}

func (d *directory[S, D]) fetchDetail(ctx context.Context, mu *sync.RWMutex, logger logging.Logger,
	call func(context.Context) (*models.Envelope, error),
) Result[D] {
	return run(ctx, mu, &d.detail, logger, action[D]{
		name:        "fetch " + d.noun,
		fallback:    "Failed to fetch " + d.noun + " details",
		call:        call,
		requireData: true,
		commit: func(v D) {
			d.selected = &v
		},
	})
}

// filter returns the loaded items for which any of fields matches query,
// ignoring case. An empty query returns everything.
func (d *directory[S, D]) filter(query string, fields func(S) []string) []S {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(d.items)
	}
	out := make([]S, 0, len(d.items))
	for _, item := range d.items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
