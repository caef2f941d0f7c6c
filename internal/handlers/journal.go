package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lockin90/lockin-backend/internal/challenge"
	"github.com/lockin90/lockin-backend/internal/database"
	"github.com/lockin90/lockin-backend/internal/middleware"
	"github.com/lockin90/lockin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateJournalRequest struct {
	EntryDate string `json:"entry_date" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Mood      string `json:"mood" validate:"required"`
}

type UpdateJournalRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Mood    *string `json:"mood"`
}

// CreateJournalEntry creates the caller's entry for one challenge day.
// The (user, date) uniqueness is enforced by the Mongo index, so a lost
// race still comes back as DUPLICATE_ENTRY rather than a second entry.
func CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var req CreateJournalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if !models.ValidMood(models.Mood(req.Mood)) {
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid mood")
		return
	}

	entryDate, err := challenge.ParseDate(req.EntryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "entry_date must be YYYY-MM-DD")
		return
	}
	if !challenge.InWindow(user.ChallengeStartDate, entryDate) {
		writeError(w, http.StatusBadRequest, CodeOutOfRange, "entry_date is outside your 90-day challenge window")
		return
	}

	now := time.Now().UTC()
	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    user.ID,
		EntryDate: challenge.FormatDate(entryDate),
		Title:     req.Title,
		Content:   req.Content,
		Mood:      models.Mood(req.Mood),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("journal_entries").InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeError(w, http.StatusBadRequest, CodeDuplicateEntry, "An entry already exists for this date")
			return
		}
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to create journal entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// loadOwnedEntry fetches an entry by id and enforces ownership. Writes the
// error response on failure and returns nil.
func loadOwnedEntry(ctx context.Context, w http.ResponseWriter, entryID, callerID string) *models.JournalEntry {
	var entry models.JournalEntry
	err := database.DB.Collection("journal_entries").FindOne(ctx, bson.M{"id": entryID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, CodeNotFound, "Journal entry not found")
		return nil
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load journal entry")
		return nil
	}
	if entry.UserID != callerID {
		writeError(w, http.StatusForbidden, CodeForbidden, "You do not own this entry")
		return nil
	}
	return &entry
}

// UpdateJournalEntry updates title/content/mood of a caller-owned entry.
// The entry date is immutable; moving an entry means delete and recreate.
func UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	entryID := chi.URLParam(r, "id")

	var req UpdateJournalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.Mood != nil && !models.ValidMood(models.Mood(*req.Mood)) {
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid mood")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if loadOwnedEntry(ctx, w, entryID, user.ID) == nil {
		return
	}

	update := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Content != nil {
		update["content"] = *req.Content
	}
	if req.Mood != nil {
		update["mood"] = *req.Mood
	}

	if _, err := database.DB.Collection("journal_entries").UpdateOne(ctx, bson.M{"id": entryID}, bson.M{"$set": update}); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to update journal entry")
		return
	}

	var updated models.JournalEntry
	if err := database.DB.Collection("journal_entries").FindOne(ctx, bson.M{"id": entryID}).Decode(&updated); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load journal entry")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteJournalEntry removes a caller-owned entry.
func DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	entryID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if loadOwnedEntry(ctx, w, entryID, user.ID) == nil {
		return
	}

	if _, err := database.DB.Collection("journal_entries").DeleteOne(ctx, bson.M{"id": entryID}); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to delete journal entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Journal entry deleted successfully",
	})
}

// TodayEntry returns the caller's entry for today, or JSON null when none
// has been written yet.
func TodayEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	today := challenge.FormatDate(time.Now())
	var entry models.JournalEntry
	err := database.DB.Collection("journal_entries").
		FindOne(ctx, bson.M{"user_id": user.ID, "entry_date": today}).
		Decode(&entry)
	if err == mongo.ErrNoDocuments {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load journal entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// findEntriesByOwner loads all of a user's journal entries.
func findEntriesByOwner(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	findOptions := options.Find().SetSort(bson.M{"entry_date": 1})
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

// PrivateHeatmap returns the caller's 90-slot journal heatmap.
func PrivateHeatmap(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := findEntriesByOwner(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load journal entries")
		return
	}

	writeJSON(w, http.StatusOK, challenge.ComputeOwnerHeatmap(user.ChallengeStartDate, entries, time.Now()))
}
