package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craneworks/craneops-backend-go/internal/pkg/jwt"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	h := Handlers{
		Auth:         NewAuthHandler(nil),
		Employee:     NewEmployeeHandler(nil),
		Master:       NewMasterHandler(nil),
		Project:      NewProjectHandler(nil),
		Task:         NewTaskHandler(nil, nil),
		Assignment:   NewAssignmentHandler(nil),
		WorkEntry:    NewWorkEntryHandler(nil),
		Leave:        NewLeaveHandler(nil),
		Payroll:      NewPayrollHandler(nil),
		Hiring:       NewHiringHandler(nil),
		Dashboard:    NewDashboardHandler(nil),
		Notification: NewNotificationHandler(nil, jwtService),
	}
	return NewRouter(jwtService, h, []string{"http://localhost:3000"})
}

func TestRouter_ProviderTestConnectionRoutes(t *testing.T) {
	r := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rctx := chi.NewRouteContext()
		assert.True(t, r.Match(rctx, method, "/api/v1/zenegy/test-connection"),
			"%s /api/v1/zenegy/test-connection not routed", method)
	}

	rctx := chi.NewRouteContext()
	assert.False(t, r.Match(rctx, http.MethodDelete, "/api/v1/zenegy/test-connection"))
}

func TestRouter_ProviderTestConnectionRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, "/api/v1/zenegy/test-connection", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, method)
	}
}
