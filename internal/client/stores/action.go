package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
)

var errEmptyData = errors.New("response carries no data")

// loadState tracks one concern. seq identifies the latest started call.
type loadState struct {
	loading bool
	err     string
	seq     uint64
}

func (s *loadState) status() Status {
	return Status{IsLoading: s.loading, Error: s.err}
}

// action describes one async store operation.
type action[T any] struct {
	name     string
	fallback string
	call     func(ctx context.Context) (*models.Envelope, error)

	// requireData fails the action when the envelope has no data.
	requireData bool
	// validate rejects decoded data before anything is committed.
	validate func(data T) error
	// effect runs under the store lock right before commit, and only when
	// commit would run. An error fails the action and skips commit.
	effect func(ctx context.Context, data T) error
	// commit runs under the store lock.
	commit func(data T)
	// mutation actions commit even when a newer call of the same concern
	// has started since. Their flags are still fenced.
	mutation bool
}

// run executes a under the loading protocol, guarding st and the commit with mu.
func run[T any](ctx context.Context, mu *sync.RWMutex, st *loadState, logger logging.Logger, a action[T]) Result[T] {
	mu.Lock()
	st.seq++
	seq := st.seq
	st.loading = true
	st.err = ""
	mu.Unlock()

	logger.Debug(ctx, "action started", "action", a.name)
	data, msg, ok := execute(ctx, logger, a)

	mu.Lock()
	defer mu.Unlock()

	latest := st.seq == seq
	if ok && (latest || a.mutation) {
		if a.effect != nil {
			if err := a.effect(ctx, data); err != nil {
				logger.Error(ctx, "action side effect failed", "action", a.name, "error", err)
				msg, ok = a.fallback, false
			}
		}
		if ok && a.commit != nil {
			a.commit(data)
		}
	}
	if latest {
		st.loading = false
		st.err = msg
	} else {
		logger.Debug(ctx, "action superseded by a newer call", "action", a.name)
	}

	if !ok {
		return Result[T]{Error: msg}
	}
	return Result[T]{Success: true, Data: data}
}

func execute[T any](ctx context.Context, logger logging.Logger, a action[T]) (T, string, bool) {
	var zero T

	env, err := a.call(ctx)
	if err != nil || env == nil || !env.Success {
		msg := ErrorMessage(env, err, a.fallback)
		logger.Warn(ctx, "action failed", "action", a.name, "message", msg, "error", err)
		return zero, msg, false
	}

	data, err := decodeData[T](env.Data, a.requireData)
	if err != nil {
		logger.Warn(ctx, "action returned unusable data", "action", a.name, "error", err)
		return zero, a.fallback, false
	}

	if a.validate != nil {
		if err := a.validate(data); err != nil {
			logger.Warn(ctx, "action returned invalid data", "action", a.name, "error", err)
			return zero, a.fallback, false
		}
	}
	return data, "", true
}

func decodeData[T any](raw json.RawMessage, required bool) (T, error) {
	var v T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if required {
			return v, errEmptyData
		}
		return v, nil
	}
	err := json.Unmarshal(trimmed, &v)
	return v, err
}

// list decodes either a bare JSON array or a paginated {items: [...]} payload.
type list[T any] []T

func (l *list[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var page models.Page[T]
	if err := json.Unmarshal(b, &page); err != nil {
		return err
	}
	*l = page.Items
	return nil
}

func cloneRef[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
