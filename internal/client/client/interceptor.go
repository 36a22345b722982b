package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tutoradmin/internal/common"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
	"github.com/google/uuid"
)

// Navigator moves the user interface to another route. It is injected so
// that the transport does not know about the CLI or any router.
type Navigator interface {
	CurrentRoute() string
	Navigate(route string)
}

// SessionStore is the part of the persisted session the transport needs.
type SessionStore interface {
	RawToken(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// withAccessToken returns a copy of req carrying the bearer token.
func withAccessToken(req *http.Request, token string) *http.Request {
	req = req.Clone(req.Context())
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return req
}

// bearerInterceptor attaches the persisted token, if it can be read and decoded.
func bearerInterceptor(sessions SessionStore, logger logging.Logger, next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		ctx := req.Context()

		raw, err := sessions.RawToken(ctx)
		if err != nil {
			logger.Warn(ctx, "session token unreadable, sending unauthenticated", "error", err)
			return next.RoundTrip(req)
		}
		if len(raw) == 0 {
			return next.RoundTrip(req)
		}

		var token string
		if err := json.Unmarshal(raw, &token); err != nil || token == "" {
			logger.Debug(ctx, "stored token is not a JSON string, sending unauthenticated")
			return next.RoundTrip(req)
		}

		return next.RoundTrip(withAccessToken(req, token))
	})
}

// unauthorizedInterceptor drops the session and sends the user to the login
// route whenever the backend answers 401.
func unauthorizedInterceptor(sessions SessionStore, nav Navigator, logger logging.Logger, next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err != nil || resp.StatusCode != http.StatusUnauthorized {
			return resp, err
		}

		ctx := context.WithoutCancel(req.Context())
		logger.Warn(ctx, "backend rejected credentials, clearing session", "path", req.URL.Path)

		if err := sessions.Clear(ctx); err != nil {
			logger.Error(ctx, "failed to clear session", "error", err)
		}
		if nav != nil && nav.CurrentRoute() != common.RouteLogin {
			nav.Navigate(common.RouteLogin)
		}
		return resp, nil
	})
}

// requestIDInterceptor tags the request with an X-Request-ID and logs its outcome.
func requestIDInterceptor(logger logging.Logger, next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		id := req.Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
			req = req.Clone(req.Context())
			req.Header.Set(common.RequestIDHeaderName, id)
		}

		start := time.Now()
		resp, err := next.RoundTrip(req)

		args := []any{"request_id", id, "method", req.Method, "path", req.URL.Path, "duration", time.Since(start)}
		if err != nil {
			logger.Warn(req.Context(), "request failed", append(args, "error", err)...)
			return nil, err
		}
		logger.Debug(req.Context(), "request completed", append(args, "status", resp.StatusCode)...)
		return resp, nil
	})
}
