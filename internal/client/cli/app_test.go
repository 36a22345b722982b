package cli

import (
	"bufio"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RestoresSession(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {})
	require.NoError(t, h.storage.Save(context.Background(), models.Session{User: rootAdmin, Token: "tok"}))
	lines := capturePrints(t)
	h.app.reader = bufio.NewReader(strings.NewReader("whoami\nquit\n"))

	h.app.Run(context.Background())

	assert.Contains(t, h.out.String(), "Welcome back, Root Admin")
	assert.Contains(t, h.out.String(), "root@x.io")
	assert.Contains(t, *lines, "admin (root@x.io /dashboard)> ")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRun_PromptsForLoginWithoutSession(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Post("/auth/login", reply(loginOK))
	})
	capturePrints(t)
	stubInputs(t, "secret", "root@x.io")

	h.app.Run(context.Background())

	assert.Equal(t, 1, h.hitCount("POST /api/auth/login"))
	assert.True(t, h.app.isLoggedIn())
}

func TestRun_ReportsFailedLogin(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Post("/auth/login", replyStatus(http.StatusBadRequest, `{"success":false,"message":"Invalid credentials"}`))
	})
	capturePrints(t)
	stubInputs(t, "wrong", "root@x.io")

	h.app.Run(context.Background())

	assert.Contains(t, h.out.String(), "Login failed: Invalid credentials")
	assert.False(t, h.app.isLoggedIn())
}

func TestHelp_HidesProtectedCommandsWhenSignedOut(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {})
	h.app.auth.InitializeAuth(context.Background())

	out := h.app.help()
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "setstatus")

	h.signIn(t, rootAdmin)
	assert.Contains(t, h.app.help(), "setstatus <id> <status>")
}

func TestStatsCommand(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Get("/admin/stats", reply(`{"success":true,"data":{"days":30,"totalParents":12,"totalTutors":7,"totalRevenue":1500.5}}`))
	})
	h.signIn(t, rootAdmin)

	require.NoError(t, h.run(t, "stats 30"))
	assert.Equal(t, "days=30", h.lastQuery("GET /api/admin/stats"))
	assert.Contains(t, h.out.String(), "last 30 days")
	assert.Contains(t, h.out.String(), "1500.50")

	assert.EqualError(t, h.run(t, "stats abc"), "usage: stats [days]")
}

func TestPaymentCommands(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Get("/admin/payment-requests", reply(`{"success":true,"data":[{"id":7,"tutorName":"Ada Lovelace","amount":120,"status":"REQUESTED"}]}`))
		r.Get("/admin/payment-requests/{id}", reply(`{"success":true,"data":{"id":7,"tutorId":3,"tutorName":"Ada Lovelace","amount":120,"status":"REQUESTED"}}`))
		r.Patch("/admin/payment-requests/{id}/status", reply(`{"success":true,"message":"Status updated"}`))
	})
	h.signIn(t, rootAdmin)

	require.NoError(t, h.run(t, "payments"))
	assert.Contains(t, h.out.String(), "Ada Lovelace")
	assert.Contains(t, h.out.String(), "Requested")

	require.NoError(t, h.run(t, "payment 7"))
	require.NoError(t, h.run(t, "setstatus 7 paid"))
	assert.JSONEq(t, `{"status":"PAID"}`, h.lastBody("PATCH /api/admin/payment-requests/7/status"))

	st := h.app.admin.Snapshot()
	assert.Equal(t, models.PaymentStatusPaid, st.PaymentRequests[0].Status)
	assert.Equal(t, models.PaymentStatusPaid, st.SelectedPaymentRequest.Status)
	assert.Contains(t, h.out.String(), "is now Paid")

	err := h.run(t, "setstatus 7 settled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SETTLED")
	assert.Equal(t, 1, h.hitCount("PATCH /api/admin/payment-requests/7/status"))

	assert.EqualError(t, h.run(t, "setstatus 7"), "usage: setstatus <id> <status>")
}

func TestAdminCommands(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Get("/admin/admins", reply(`{"success":true,"data":[{"id":1,"fullName":"Root Admin","email":"root@x.io"}]}`))
		r.Post("/admin/admins", replyStatus(http.StatusConflict, `{"success":false,"message":"Conflict","errors":[{"field":"email","message":"Email already exists"}]}`))
		r.Delete("/admin/admins/{id}", reply(`{"success":true}`))
	})
	h.signIn(t, rootAdmin)

	require.NoError(t, h.run(t, "admins"))
	assert.Contains(t, h.out.String(), "Root Admin")

	stubInputs(t, "pw", "Dup", "User", "root@x.io")
	err := h.run(t, "addadmin")
	require.EqualError(t, err, "Email already exists")
	assert.JSONEq(t, `{"firstName":"Dup","lastName":"User","email":"root@x.io","password":"pw"}`, h.lastBody("POST /api/admin/admins"))

	stubInputs(t, "", "n")
	require.NoError(t, h.run(t, "deladmin 1"))
	assert.Zero(t, h.hitCount("DELETE /api/admin/admins/1"))

	stubInputs(t, "", "y")
	require.NoError(t, h.run(t, "deladmin 1"))
	assert.Equal(t, 1, h.hitCount("DELETE /api/admin/admins/1"))
	assert.Empty(t, h.app.admin.Snapshot().Admins)

	assert.EqualError(t, h.run(t, "deladmin"), "usage: deladmin <id>")
}

func TestOnboardingCommands(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Get("/admin/onboarding/pending", reply(`{"success":true,"data":{"items":[
			{"id":"u1","firstName":"Tom","lastName":"Tutor","email":"tom@x.io","role":"TUTOR"},
			{"id":"u2","firstName":"Pat","lastName":"Parent","email":"pat@x.io","role":"PARENT"}],
			"pagination":{"page":2,"totalPages":2,"total":22}}}`))
		r.Patch("/admin/users/{id}/approve-onboarding", reply(`{"success":true}`))
	})
	h.signIn(t, rootAdmin)

	require.NoError(t, h.run(t, "pending 2"))
	assert.Equal(t, "limit=20&page=2", h.lastQuery("GET /api/admin/onboarding/pending"))
	assert.Contains(t, h.out.String(), "page 2 of 2, 22 total")

	require.NoError(t, h.run(t, "approve u1"))
	assert.Contains(t, h.out.String(), "21 still pending")
	assert.Len(t, h.app.admin.Snapshot().PendingUsers, 1)
}

func TestUserCommands(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Get("/admin/users/{id}", reply(`{"success":true,"data":{"id":9,"name":"Tom Tutor","email":"tom@x.io","role":"TUTOR"}}`))
		r.Get("/admin/users/{id}/data", reply(`{"success":true,"data":{"user":{"id":9,"email":"tom@x.io","role":"TUTOR"},
			"tutor":{"profile":{"id":9,"firstName":"Tom","lastName":"Tutor"},"documents":[{"type":"DEGREE","fileName":"tom-degree.pdf"}]}}}`))
	})
	h.signIn(t, rootAdmin)

	require.NoError(t, h.run(t, "user 9"))
	assert.Contains(t, h.out.String(), "Tom Tutor")

	require.NoError(t, h.run(t, "userdata 9"))
	assert.Contains(t, h.out.String(), "http://files.test/tutors/tom-degree.pdf")
}

func TestParentCommands(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Get("/admin/parents", reply(`{"success":true,"data":{"items":[
			{"id":1,"firstName":"Maria","lastName":"Smith","email":"maria@x.io","childrenCount":2},
			{"id":2,"firstName":"John","lastName":"Doe","email":"john@x.io"}],
			"pagination":{"page":1,"totalPages":1,"total":2}}}`))
		r.Get("/admin/parents/{id}", reply(`{"success":true,"data":{"profile":{"id":1,"firstName":"Maria","lastName":"Smith"},
			"children":[{"id":5,"firstName":"Lily","grade":"5"}],"transactions":[{"id":"t1","type":"SUBSCRIPTION","amount":49,"status":"PAID"}],
			"documents":[{"type":"ID","fileName":"maria id.png"}]}}`))
	})
	h.signIn(t, rootAdmin)

	require.NoError(t, h.run(t, "parents maria smith"))
	assert.Equal(t, "limit=20&page=1&search=maria+smith", h.lastQuery("GET /api/admin/parents"))

	h.out.Reset()
	require.NoError(t, h.run(t, "filter parents doe"))
	assert.Contains(t, h.out.String(), "john@x.io")
	assert.NotContains(t, h.out.String(), "maria@x.io")

	require.NoError(t, h.run(t, "parent 1"))
	assert.Contains(t, h.out.String(), "Lily")
	assert.Contains(t, h.out.String(), "http://files.test/parents/maria%20id.png")

	assert.EqualError(t, h.run(t, "filter kids x"), "usage: filter parents|tutors <text>")
}

func TestTutorCommands(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {
		r.Get("/admin/tutors", reply(`{"success":true,"data":{"items":[{"id":3,"firstName":"Ada","lastName":"Lovelace","email":"ada@x.io","subjects":["Math"]}],
			"pagination":{"page":3,"totalPages":5,"total":100}}}`))
		r.Get("/admin/tutors/{id}", replyStatus(http.StatusNotFound, `{"success":false,"message":"Tutor not found"}`))
		r.Get("/admin/tutors/payment-requests", reply(`{"success":true,"data":{"items":[{"id":11,"tutorName":"Ada Lovelace","amount":80,"status":"IN_REVIEW"}]}}`))
		r.Patch("/admin/tutors/payment-requests/{id}/status", reply(`{"success":true}`))
	})
	h.signIn(t, rootAdmin)

	require.NoError(t, h.run(t, "tutors 3"))
	assert.Equal(t, "limit=20&page=3", h.lastQuery("GET /api/admin/tutors"))
	assert.Contains(t, h.out.String(), "page 3 of 5, 100 total")

	assert.EqualError(t, h.run(t, "tutor 404"), "Tutor not found")
	assert.True(t, h.app.isLoggedIn(), "a 404 leaves the session alone")

	require.NoError(t, h.run(t, "tpayments"))
	assert.Contains(t, h.out.String(), "In Review")

	require.NoError(t, h.run(t, "tsetstatus 11 rejected"))
	assert.JSONEq(t, `{"status":"REJECTED"}`, h.lastBody("PATCH /api/admin/tutors/payment-requests/11/status"))
	assert.Equal(t, models.PaymentStatusRejected, h.app.tutors.Snapshot().PaymentRequests[0].Status)
}

func TestStatusesCommand(t *testing.T) {
	h := newHarness(t, func(r chi.Router) {})

	require.NoError(t, h.run(t, "statuses"))
	for _, label := range []string{"Pending", "Requested", "In Review", "Paid", "Rejected"} {
		assert.Contains(t, h.out.String(), label)
	}
}
