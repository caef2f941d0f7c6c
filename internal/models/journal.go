package models

import "time"

// Mood is the self-reported mood attached to a journal entry.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodExcited    Mood = "excited"
	MoodFocused    Mood = "focused"
	MoodTired      Mood = "tired"
	MoodFrustrated Mood = "frustrated"
	MoodNeutral    Mood = "neutral"
)

// ValidMood reports whether m is one of the closed mood values.
func ValidMood(m Mood) bool {
	switch m {
	case MoodHappy, MoodExcited, MoodFocused, MoodTired, MoodFrustrated, MoodNeutral:
		return true
	}
	return false
}

// JournalEntry is one day's journal record. At most one entry exists per
// (user_id, entry_date) pair; a unique Mongo index enforces this so
// concurrent creates are serialized by the store, not the application.
type JournalEntry struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	UserID string `bson:"user_id" json:"user_id"`
	// EntryDate is the canonical calendar date string (YYYY-MM-DD) the
	// entry belongs to. Immutable after creation.
	EntryDate string `bson:"entry_date" json:"entry_date"`
	Title     string `bson:"title" json:"title"`
	Content   string `bson:"content" json:"content"`
	Mood      Mood   `bson:"mood" json:"mood"`
}
