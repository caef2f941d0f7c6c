package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []ProjectStatus{StatusPlanning, StatusInProgress, StatusCompleted, StatusPaused} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus("done"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("PLANNING"))
}

func TestValidMood(t *testing.T) {
	for _, m := range []Mood{MoodHappy, MoodExcited, MoodFocused, MoodTired, MoodFrustrated, MoodNeutral} {
		assert.True(t, ValidMood(m), string(m))
	}
	assert.False(t, ValidMood("ecstatic"))
	assert.False(t, ValidMood(""))
}
