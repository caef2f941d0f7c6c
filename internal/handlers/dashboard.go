package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/lockin90/lockin-backend/internal/challenge"
	"github.com/lockin90/lockin-backend/internal/middleware"
)

// GetDashboard returns the caller's aggregated challenge progress:
// elapsed/remaining days, percent progress, per-month project stats and the
// full project list. Recomputed on every request; nothing is cached.
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	projects, err := findProjectsByOwner(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load projects")
		return
	}

	writeJSON(w, http.StatusOK, challenge.ComputeDashboard(*user, projects, time.Now()))
}
