package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
)

// paymentBook is the payment request list plus the selected request, shared
// by the admin and tutor stores. Callers hold no lock; the owning store's
// mutex is passed in.
type paymentBook struct {
	items    []models.PaymentRequest
	selected *models.PaymentRequest
	list     loadState
	detail   loadState
	update   loadState
}

func (b *paymentBook) fetchAll(ctx context.Context, mu *sync.RWMutex, logger logging.Logger,
	call func(context.Context) (*models.Envelope, error),
) Result[[]models.PaymentRequest] {
	res := run(ctx, mu, &b.list, logger, action[list[models.PaymentRequest]]{
		name:     "fetch payment requests",
		fallback: "Failed to fetch payment requests",
		call:     call,
		commit: func(items list[models.PaymentRequest]) {
			b.items = items
		},
	})
	return Result[[]models.PaymentRequest]{Success: res.Success, Data: res.Data, Error: res.Error}
}

func (b *paymentBook) fetchOne(ctx context.Context, mu *sync.RWMutex, logger logging.Logger,
	call func(context.Context) (*models.Envelope, error),
) Result[models.PaymentRequest] {
	return run(ctx, mu, &b.detail, logger, action[models.PaymentRequest]{
		name:        "fetch payment request",
		fallback:    "Failed to fetch payment request",
		call:        call,
		requireData: true,
		commit: func(pr models.PaymentRequest) {
			b.selected = &pr
		},
	})
}

// updateStatus patches the list entry and the selected request with id in
// place once the backend accepts the new status. Unknown statuses fail
// without a call.
func (b *paymentBook) updateStatus(ctx context.Context, mu *sync.RWMutex, logger logging.Logger, now func() time.Time,
	id models.ID, status models.PaymentStatus,
	call func(context.Context) (*models.Envelope, error),
) Result[json.RawMessage] {
	if !status.Valid() {
		return Result[json.RawMessage]{Error: fmt.Sprintf("Invalid payment status %q", status)}
	}

	return run(ctx, mu, &b.update, logger, action[json.RawMessage]{
		name:     "update payment status",
		fallback: "Failed to update payment status",
		call:     call,
		mutation: true,
		commit: func(json.RawMessage) {
			at := now()
			for i := range b.items {
				if b.items[i].ID == id {
					b.items[i].Status = status
					b.items[i].UpdatedAt = at
				}
			}
			if b.selected != nil && b.selected.ID == id {
				patched := *b.selected
				patched.Status = status
				patched.UpdatedAt = at
				b.selected = &patched
			}
		},
	})
}

func (b *paymentBook) snapshot() ([]models.PaymentRequest, *models.PaymentRequest) {
	return slices.Clone(b.items), cloneRef(b.selected)
}
