package models

import "time"

// ProjectStatus is the lifecycle state of a month project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in-progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusPaused     ProjectStatus = "paused"
)

// ValidStatus reports whether s is one of the closed status values.
func ValidStatus(s ProjectStatus) bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// Project is one of up to three "month" projects a user builds during the
// challenge. Month is a challenge phase (1-3), not a calendar month.
type Project struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	UserID       string        `bson:"user_id" json:"user_id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	TechStack    []string      `bson:"tech_stack" json:"tech_stack"`
	DeployedLink string        `bson:"deployed_link,omitempty" json:"deployed_link,omitempty"`
	GithubLink   string        `bson:"github_link,omitempty" json:"github_link,omitempty"`
	Status       ProjectStatus `bson:"status" json:"status"`
	Month        int           `bson:"month" json:"month"`
}

// ExploreProject is a project joined with its creator's public fields for
// the showcase feed.
type ExploreProject struct {
	ID             string        `bson:"id" json:"id"`
	Title          string        `bson:"title" json:"title"`
	Description    string        `bson:"description" json:"description"`
	TechStack      []string      `bson:"tech_stack" json:"tech_stack"`
	DeployedLink   string        `bson:"deployed_link,omitempty" json:"deployed_link,omitempty"`
	GithubLink     string        `bson:"github_link,omitempty" json:"github_link,omitempty"`
	Status         ProjectStatus `bson:"status" json:"status"`
	Month          int           `bson:"month" json:"month"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	CreatorID      string        `bson:"creator_id" json:"creator_id"`
	CreatorName    string        `bson:"creator_name" json:"creator_name"`
	CreatorPicture string        `bson:"creator_picture" json:"creator_picture"`
}
