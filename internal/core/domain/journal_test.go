package domain_test

import (
	"testing"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntryMatchesQuery(t *testing.T) {
	entry := domain.JournalEntry{
		Title:   "Morning reflections",
		Content: "Grateful for the quiet walk by the river",
		Tags:    []string{"gratitude", "nature"},
	}

	assert.True(t, entry.MatchesQuery(""))
	assert.True(t, entry.MatchesQuery("morning"))
	assert.True(t, entry.MatchesQuery("RIVER"))
	assert.True(t, entry.MatchesQuery("nature"))
	assert.False(t, entry.MatchesQuery("work"))
}

func TestFilterJournalEntries(t *testing.T) {
	entries := []domain.JournalEntry{
		{EntryID: "a", Title: "Gym day", Content: "leg day"},
		{EntryID: "b", Title: "Cooking", Content: "made pasta", Tags: []string{"food"}},
		{EntryID: "c", Title: "Gym progress", Content: "new PR"},
	}

	filtered := domain.FilterJournalEntries(entries, "gym")
	assert.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].EntryID)
	assert.Equal(t, "c", filtered[1].EntryID)

	all := domain.FilterJournalEntries(entries, "")
	assert.Len(t, all, 3)
}

func TestMoodIsValid(t *testing.T) {
	for _, m := range []domain.Mood{domain.MoodHappy, domain.MoodSad, domain.MoodExcited, domain.MoodCalm, domain.MoodAnxious, domain.MoodGrateful} {
		assert.True(t, m.IsValid(), string(m))
	}
	assert.False(t, domain.Mood("angry").IsValid())
	assert.False(t, domain.Mood("").IsValid())
}

func TestAddTag_DuplicateIsNoOp(t *testing.T) {
	entry := domain.JournalEntry{}

	assert.True(t, entry.AddTag("travel"))
	assert.False(t, entry.AddTag("travel"))
	assert.True(t, entry.AddTag("food"))
	assert.Equal(t, []string{"travel", "food"}, entry.Tags)

	assert.False(t, entry.RemoveTag("missing"))
	assert.True(t, entry.RemoveTag("travel"))
	assert.Equal(t, []string{"food"}, entry.Tags)
}
