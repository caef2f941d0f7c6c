package models

import "time"

// User is created on the first successful broker session exchange.
// Name and picture are refreshed from the broker on each login; everything
// else is immutable after creation.
type User struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	Email   string `bson:"email" json:"email"`
	Name    string `bson:"name" json:"name"`
	Picture string `bson:"picture" json:"picture"`

	// ChallengeStartDate anchors the user's 90-day window. Set once at
	// account creation, normalized to UTC midnight.
	ChallengeStartDate time.Time `bson:"challenge_start_date" json:"challenge_start_date"`
}
