package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lockin90/lockin-backend/internal/challenge"
	"github.com/lockin90/lockin-backend/internal/database"
	"github.com/lockin90/lockin-backend/internal/models"
	"github.com/lockin90/lockin-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recentEntriesLimit = 5

// ProfileResponse is the public view of a participant.
type ProfileResponse struct {
	ID                 string                          `json:"id"`
	Name               string                          `json:"name"`
	Picture            string                          `json:"picture"`
	ChallengeStartDate time.Time                       `json:"challenge_start_date"`
	DaysElapsed        int                             `json:"days_elapsed"`
	DaysRemaining      int                             `json:"days_remaining"`
	ChallengeProgress  int                             `json:"challenge_progress"`
	MonthStats         map[string]challenge.MonthStats `json:"month_stats"`
	Projects           []models.Project                `json:"projects"`
	RecentEntries      []models.JournalEntry           `json:"recent_entries"`
}

// GetProfile returns a participant's public profile: challenge stats,
// projects, and a short list of recent journal entries. Journal text is
// public by product decision; the heatmap endpoint stays aggregated.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := services.FindUserByID(ctx, userID)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, CodeNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load user")
		return
	}

	projects, err := findProjectsByOwner(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load projects")
		return
	}

	recent, err := findRecentEntries(ctx, user.ID, recentEntriesLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load journal entries")
		return
	}

	dash := challenge.ComputeDashboard(*user, projects, time.Now())

	writeJSON(w, http.StatusOK, ProfileResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Picture:            user.Picture,
		ChallengeStartDate: user.ChallengeStartDate,
		DaysElapsed:        dash.DaysElapsed,
		DaysRemaining:      dash.DaysRemaining,
		ChallengeProgress:  dash.ChallengeProgress,
		MonthStats:         dash.MonthStats,
		Projects:           dash.Projects,
		RecentEntries:      recent,
	})
}

func findRecentEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	findOptions := options.Find().
		SetSort(bson.M{"entry_date": -1}).
		SetLimit(int64(limit))
	cursor, err := database.DB.Collection("journal_entries").Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.JournalEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PublicHeatmap returns another participant's 90-slot heatmap. Same shape
// as the private variant; it carries mood and content length but never the
// entry text or title.
func PublicHeatmap(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := services.FindUserByID(ctx, userID)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, CodeNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load user")
		return
	}

	entries, err := findEntriesByOwner(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load journal entries")
		return
	}

	writeJSON(w, http.StatusOK, challenge.ComputeHeatmap(user.ChallengeStartDate, entries, time.Now()))
}
