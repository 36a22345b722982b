package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
)

// Request describes one backend call. Path is relative to the API base URL
// and must already be escaped.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   any
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
	logger    logging.Logger
}

type Option func(*options)

// WithTimeout bounds every request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithTransport replaces http.DefaultTransport at the bottom of the chain.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewHTTPClient builds a client for baseURL. sessions supplies the bearer
// token and is cleared on 401; nav may be nil when nothing needs to react
// to a forced logout.
func NewHTTPClient(baseURL string, sessions SessionStore, nav Navigator, opts ...Option) (*HTTPClient, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", baseURL, err)
	}

	o := options{transport: http.DefaultTransport, logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	rt := bearerInterceptor(sessions, o.logger, o.transport)
	rt = unauthorizedInterceptor(sessions, nav, o.logger, rt)
	rt = requestIDInterceptor(o.logger, rt)

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Transport: rt, Timeout: o.timeout},
		logger:     o.logger,
	}, nil
}

// Send performs r and returns the backend envelope. See the package
// documentation for the error contract.
func (c *HTTPClient) Send(ctx context.Context, r Request) (*models.Envelope, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, r.Method, r.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s %s: %w", ErrUnavailable, r.Method, r.Path, err)
	}

	env, decodeErr := decodeEnvelope(body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Method: r.Method, Path: r.Path}
		if decodeErr == nil {
			apiErr.Envelope = env
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, r.Method, r.Path, decodeErr)
	}
	return env, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	u, err := url.Parse(c.baseURL + r.Path)
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", r.Path, err)
	}
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body for %s %s: %w", method, r.Path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func decodeEnvelope(body []byte) (*models.Envelope, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
