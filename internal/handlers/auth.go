package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/lockin90/lockin-backend/internal/config"
	"github.com/lockin90/lockin-backend/internal/middleware"
	"github.com/lockin90/lockin-backend/internal/models"
	"github.com/lockin90/lockin-backend/internal/services"
)

var brokerClient *services.BrokerClient

// InitAuthHandlers wires the broker client from config. Called once from main.
func InitAuthHandlers(cfg *config.Config) {
	brokerClient = services.NewBrokerClient(cfg.AuthServiceURL)
}

// sessionCookie builds the httpOnly session cookie. SameSite=None because
// the frontend lives on a different origin than the API.
func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func userPayload(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"name":                 user.Name,
		"picture":              user.Picture,
		"challenge_start_date": user.ChallengeStartDate,
	}
}

// CreateSession exchanges the transient X-Session-ID from the OAuth redirect
// for a long-lived app session. Creates the user on first sight. Broker
// failures surface as a plain 401; internals are never leaked.
func CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, CodeValidation, "Session ID required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	identity, err := brokerClient.Exchange(ctx, sessionID)
	if err != nil {
		log.Printf("broker exchange failed: %v", err)
		writeError(w, http.StatusUnauthorized, CodeUnauthenticated, "Authentication failed")
		return
	}

	user, err := services.UpsertBrokerUser(ctx, identity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to create user")
		return
	}

	token, err := services.CreateSession(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to create session")
		return
	}

	http.SetCookie(w, sessionCookie(token, int(services.SessionDuration.Seconds())))
	writeJSON(w, http.StatusOK, userPayload(user))
}

// GetMe returns the authenticated user's profile. The frontend calls this
// on every page load, so it also slides the session expiry forward another
// 7 days and re-issues the cookie. A failed refresh is logged but never
// fails the request; the session simply keeps its old deadline.
func GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, CodeUnauthenticated, "Authentication required")
		return
	}

	if token := middleware.SessionToken(r); token != "" {
		if err := services.RefreshSession(token); err != nil {
			log.Printf("session refresh failed: %v", err)
		} else {
			http.SetCookie(w, sessionCookie(token, int(services.SessionDuration.Seconds())))
		}
	}

	writeJSON(w, http.StatusOK, userPayload(user))
}

// Logout invalidates the session. Best-effort: the cookie is always cleared
// and the caller always sees success, even if the Redis delete fails.
func Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		if err := services.InvalidateSession(token); err != nil {
			log.Printf("logout: failed to invalidate session: %v", err)
		}
	}

	http.SetCookie(w, sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}
