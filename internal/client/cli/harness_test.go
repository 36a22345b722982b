package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/tutoradmin/internal/client/api"
	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/client/session"
	"github.com/dmitrijs2005/tutoradmin/internal/client/stores"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// harness wires the real client, API modules, stores and session database
// against a fake backend.
type harness struct {
	app     *App
	out     *bytes.Buffer
	storage *session.Storage
	router  *Router

	mu     sync.Mutex
	hits   map[string]int
	bodies map[string]string
	query  map[string]string
}

func newHarness(t *testing.T, routes func(r chi.Router)) *harness {
	t.Helper()
	h := &harness{hits: map[string]int{}, bodies: map[string]string{}, query: map[string]string{}}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			key := req.Method + " " + req.URL.Path
			body, _ := io.ReadAll(req.Body)
			h.mu.Lock()
			h.hits[key]++
			h.bodies[key] = string(body)
			h.query[key] = req.URL.RawQuery
			h.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api", routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	db, err := session.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h.storage = session.NewStorage(db)
	h.router = NewRouter()

	c, err := client.NewHTTPClient(srv.URL+"/api", h.storage, h.router)
	require.NoError(t, err)

	log := logging.Discard()
	h.out = &bytes.Buffer{}
	h.app = newApp(Params{
		Auth:    stores.NewAuthStore(api.NewAuthAPI(c), h.storage, log),
		Admin:   stores.NewAdminStore(api.NewAdminAPI(c), log),
		Parents: stores.NewParentStore(api.NewParentAPI(c), "http://files.test/parents/", log),
		Tutors:  stores.NewTutorStore(api.NewTutorAPI(c), "http://files.test/tutors/", log),
		Router:  h.router,
		Logger:  log,
	}, strings.NewReader(""), h.out)
	return h
}

func (h *harness) hitCount(key string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[key]
}

func (h *harness) lastBody(key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bodies[key]
}

func (h *harness) lastQuery(key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.query[key]
}

// signIn stores a session and restores it as the console does on start.
func (h *harness) signIn(t *testing.T, user models.User) {
	t.Helper()
	require.NoError(t, h.storage.Save(context.Background(), models.Session{User: user, Token: "tok-admin"}))
	h.app.auth.InitializeAuth(context.Background())
	require.True(t, h.app.isLoggedIn())
}

func (h *harness) run(t *testing.T, line string) error {
	t.Helper()
	parts := strings.Fields(line)
	known, err := h.app.exec(context.Background(), parts[0], parts[1:])
	require.True(t, known, "unknown command %q", parts[0])
	h.app.afterCommand(context.Background())
	return err
}

func reply(body string) http.HandlerFunc {
	return replyStatus(http.StatusOK, body)
}

func replyStatus(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// stubInputs answers every text prompt from answers in order and returns
// password for every password prompt.
func stubInputs(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	var mu sync.Mutex
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

var rootAdmin = models.User{ID: "1", FirstName: "Root", LastName: "Admin", Email: "root@x.io", Role: models.RoleAdmin}

const loginOK = `{"success":true,"data":{"token":"tok-new","user":{"id":1,"firstName":"Root","lastName":"Admin","email":"root@x.io","role":"ADMIN"}}}`
