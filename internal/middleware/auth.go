package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lockin90/lockin-backend/internal/models"
	"github.com/lockin90/lockin-backend/internal/services"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

// SessionToken extracts the opaque session token from the request: the
// httpOnly cookie first, then a Bearer Authorization header.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie("session_token"); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// UserFromContext returns the authenticated user placed by RequireAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// RequireAuth resolves the session token to a full user record and stores
// it in the request context. Requests without a valid session get 401 with
// the UNAUTHENTICATED code; handlers behind this middleware can assume
// UserFromContext succeeds.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := SessionToken(r)
		if token == "" {
			unauthenticated(w)
			return
		}

		userID, ok, err := services.ValidateSession(token)
		if err != nil || !ok {
			unauthenticated(w)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := services.FindUserByID(ctx, userID)
		if err != nil {
			unauthenticated(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"error":"UNAUTHENTICATED","message":"Authentication required"}`))
}
