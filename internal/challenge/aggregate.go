package challenge

import (
	"fmt"
	"math"
	"time"

	"github.com/lockin90/lockin-backend/internal/models"
)

// MonthStats counts a user's projects for one challenge month.
type MonthStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Planning   int `json:"planning"`
}

// Dashboard is the aggregated progress view for one user.
type Dashboard struct {
	DaysElapsed       int                   `json:"days_elapsed"`
	DaysRemaining     int                   `json:"days_remaining"`
	ChallengeProgress int                   `json:"challenge_progress"`
	TotalProjects     int                   `json:"total_projects"`
	MonthStats        map[string]MonthStats `json:"month_stats"`
	Projects          []models.Project      `json:"projects"`
}

// DaySlot is one day of the 90-slot journal heatmap. Title and Content are
// only filled on the owner's private view; the public variant stays
// aggregated (presence, mood, length).
type DaySlot struct {
	Day           int         `json:"day"`
	Date          string      `json:"date"`
	IsFuture      bool        `json:"is_future"`
	HasEntry      bool        `json:"has_entry"`
	Mood          models.Mood `json:"mood,omitempty"`
	ContentLength int         `json:"content_length"`
	Title         string      `json:"title,omitempty"`
	Content       string      `json:"content,omitempty"`
}

// ComputeDashboard derives progress counters and per-month project stats.
// Pure function of its inputs; the full project list is echoed back so the
// client can group it however it likes.
func ComputeDashboard(user models.User, projects []models.Project, today time.Time) Dashboard {
	elapsed := DayNumber(user.ChallengeStartDate, today)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > TotalDays {
		elapsed = TotalDays
	}

	stats := make(map[string]MonthStats, 3)
	for m := 1; m <= 3; m++ {
		var s MonthStats
		for _, p := range projects {
			if p.Month != m {
				continue
			}
			s.Total++
			switch p.Status {
			case models.StatusCompleted:
				s.Completed++
			case models.StatusInProgress:
				s.InProgress++
			default:
				s.Planning++
			}
		}
		stats[fmt.Sprintf("month_%d", m)] = s
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return Dashboard{
		DaysElapsed:       elapsed,
		DaysRemaining:     TotalDays - elapsed,
		ChallengeProgress: int(math.Round(float64(elapsed) * 100 / TotalDays)),
		TotalProjects:     len(projects),
		MonthStats:        stats,
		Projects:          projects,
	}
}

// ComputeHeatmap builds the 90-slot calendar view of a user's journal with
// entry text withheld. This is the shape public profiles see.
func ComputeHeatmap(start time.Time, entries []models.JournalEntry, today time.Time) []DaySlot {
	return computeHeatmap(start, entries, today, false)
}

// ComputeOwnerHeatmap is the private variant: same 90 slots, but each
// written day also carries its entry title and text.
func ComputeOwnerHeatmap(start time.Time, entries []models.JournalEntry, today time.Time) []DaySlot {
	return computeHeatmap(start, entries, today, true)
}

// Entries are keyed by their canonical entry_date; the uniqueness invariant
// guarantees at most one per slot. Slots strictly after today are future.
func computeHeatmap(start time.Time, entries []models.JournalEntry, today time.Time, includeText bool) []DaySlot {
	byDate := make(map[string]models.JournalEntry, len(entries))
	for _, e := range entries {
		byDate[e.EntryDate] = e
	}

	today = Day(today)
	slots := make([]DaySlot, 0, TotalDays)
	for day := 1; day <= TotalDays; day++ {
		date := DateForDay(start, day)
		slot := DaySlot{
			Day:      day,
			Date:     date.Format(DateLayout),
			IsFuture: date.After(today),
		}
		if e, ok := byDate[slot.Date]; ok {
			slot.HasEntry = true
			slot.Mood = e.Mood
			slot.ContentLength = len(e.Content)
			if includeText {
				slot.Title = e.Title
				slot.Content = e.Content
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
