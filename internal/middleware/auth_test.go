package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbai-pro/backend/internal/auth"
)

type staticSessions map[string]string

func (s staticSessions) Create(_ context.Context, userID string) (string, error) { return "", nil }
func (s staticSessions) Get(_ context.Context, sessionID string) (string, error) {
	return s[sessionID], nil
}
func (s staticSessions) Delete(_ context.Context, sessionID string) error { return nil }
func (s staticSessions) TTL() time.Duration                               { return time.Hour }

func TestRequireAuth(t *testing.T) {
	sessions := staticSessions{"valid-sid": "user-42"}

	var gotPrincipal auth.Principal
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, _ = auth.PrincipalFrom(r.Context())
		called = true
	})
	protected := RequireAuth(sessions)(next)

	t.Run("no cookie", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		assert.False(t, called)
	})

	t.Run("unknown session", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "expired-sid"})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("valid session injects principal", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "valid-sid"})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.True(t, called)
		assert.Equal(t, "user-42", gotPrincipal.UserID)
	})
}
