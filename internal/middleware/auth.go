package middleware

import (
	"net/http"

	"github.com/fbai-pro/backend/internal/auth"
	"github.com/fbai-pro/backend/internal/httpx"
)

// RequireAuth validates the session cookie and injects the resolved
// Principal into the request context. Requests without a valid session are
// rejected before any store access happens.
func RequireAuth(sessions auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				httpx.ErrorFrom(w, httpx.ErrUnauthorized)
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || userID == "" {
				httpx.ErrorFrom(w, httpx.ErrUnauthorized)
				return
			}

			ctx := auth.WithPrincipal(r.Context(), auth.Principal{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
