package domain_test

import (
	"testing"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(id, date, timeStr string, status domain.EventStatus) domain.Event {
	return domain.Event{
		EventID:   id,
		Title:     "Event " + id,
		EventDate: date,
		EventTime: timeStr,
		Venue:     "Somewhere",
		Status:    status,
		Priority:  domain.PriorityMedium,
	}
}

func ids(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.EventID
	}
	return out
}

func TestSortEventsForDisplay_ChronologicalWithinPending(t *testing.T) {
	events := []domain.Event{
		makeEvent("b", "2025-03-02", "09:00", domain.EventStatusPending),
		makeEvent("a", "2025-03-01", "18:00", domain.EventStatusPending),
		makeEvent("c", "2025-03-02", "10:30", domain.EventStatusPending),
	}

	domain.SortEventsForDisplay(events)

	assert.Equal(t, []string{"a", "b", "c"}, ids(events))
}

func TestSortEventsForDisplay_CompletedAlwaysLast(t *testing.T) {
	// A completed event on the earliest date still sorts after every
	// non-completed event.
	events := []domain.Event{
		makeEvent("done-early", "2025-01-01", "08:00", domain.EventStatusCompleted),
		makeEvent("pending-late", "2025-12-31", "23:00", domain.EventStatusPending),
		makeEvent("rescheduled", "2025-06-15", "12:00", domain.EventStatusRescheduled),
	}

	domain.SortEventsForDisplay(events)

	assert.Equal(t, []string{"rescheduled", "pending-late", "done-early"}, ids(events))
}

func TestSortEventsForDisplay_CompletedPartitionOrderedByDate(t *testing.T) {
	events := []domain.Event{
		makeEvent("done-b", "2025-05-02", "10:00", domain.EventStatusCompleted),
		makeEvent("done-a", "2025-05-01", "10:00", domain.EventStatusCompleted),
		makeEvent("open", "2025-05-03", "10:00", domain.EventStatusPending),
	}

	domain.SortEventsForDisplay(events)

	assert.Equal(t, []string{"open", "done-a", "done-b"}, ids(events))
}

func TestSortEventsForDisplay_SameDateOrderedByTime(t *testing.T) {
	events := []domain.Event{
		makeEvent("evening", "2025-04-10", "19:30", domain.EventStatusPending),
		makeEvent("morning", "2025-04-10", "08:15", domain.EventStatusPending),
		makeEvent("noon", "2025-04-10", "12:00", domain.EventStatusPending),
	}

	domain.SortEventsForDisplay(events)

	assert.Equal(t, []string{"morning", "noon", "evening"}, ids(events))
}

func TestSortEventsForDisplay_StableForEqualKeys(t *testing.T) {
	events := []domain.Event{
		makeEvent("first", "2025-04-10", "09:00", domain.EventStatusPending),
		makeEvent("second", "2025-04-10", "09:00", domain.EventStatusPending),
		makeEvent("third", "2025-04-10", "09:00", domain.EventStatusPending),
	}

	domain.SortEventsForDisplay(events)

	assert.Equal(t, []string{"first", "second", "third"}, ids(events))
}

func TestSortEventsForDisplay_UnparseableFallsBackToLexicographic(t *testing.T) {
	bad := makeEvent("bad", "not-a-date", "99:99", domain.EventStatusPending)
	good := makeEvent("good", "2025-04-10", "09:00", domain.EventStatusPending)
	events := []domain.Event{good, bad}

	domain.SortEventsForDisplay(events)

	// "2025..." < "not-a-date" lexicographically
	assert.Equal(t, []string{"good", "bad"}, ids(events))
}

func TestScheduledAt(t *testing.T) {
	e := makeEvent("a", "2025-03-01", "18:30", domain.EventStatusPending)
	ts, ok := e.ScheduledAt()
	require.True(t, ok)
	assert.Equal(t, 2025, ts.Year())
	assert.Equal(t, 18, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	bad := makeEvent("b", "2025-13-40", "18:30", domain.EventStatusPending)
	_, ok = bad.ScheduledAt()
	assert.False(t, ok)
}

func TestMatchesQuery(t *testing.T) {
	e := domain.Event{
		Title:       "Team Standup",
		Description: "Weekly sync about the roadmap",
		Venue:       "Conference Room B",
	}

	assert.True(t, e.MatchesQuery(""))
	assert.True(t, e.MatchesQuery("standup"))
	assert.True(t, e.MatchesQuery("ROADMAP"))
	assert.True(t, e.MatchesQuery("room b"))
	assert.False(t, e.MatchesQuery("lunch"))
}

func TestFilterEvents_PreservesOrder(t *testing.T) {
	events := []domain.Event{
		makeEvent("a", "2025-01-01", "09:00", domain.EventStatusPending),
		makeEvent("b", "2025-01-02", "09:00", domain.EventStatusPending),
		makeEvent("c", "2025-01-03", "09:00", domain.EventStatusPending),
	}
	events[0].Title = "Dentist appointment"
	events[1].Title = "Team lunch"
	events[2].Title = "Dentist followup"

	filtered := domain.FilterEvents(events, "dentist")

	assert.Equal(t, []string{"a", "c"}, ids(filtered))
}

func TestAddRequirement_DuplicateIsNoOp(t *testing.T) {
	e := makeEvent("a", "2025-01-01", "09:00", domain.EventStatusPending)

	assert.True(t, e.AddRequirement("projector"))
	assert.False(t, e.AddRequirement("projector"))
	assert.Equal(t, []string{"projector"}, e.Requirements)

	// Different case is a different string
	assert.True(t, e.AddRequirement("Projector"))
	assert.Equal(t, []string{"projector", "Projector"}, e.Requirements)
}

func TestRemoveRequirement_MissingIsNoOp(t *testing.T) {
	e := makeEvent("a", "2025-01-01", "09:00", domain.EventStatusPending)
	e.Requirements = []string{"chairs", "snacks"}

	assert.False(t, e.RemoveRequirement("projector"))
	assert.True(t, e.RemoveRequirement("chairs"))
	assert.Equal(t, []string{"snacks"}, e.Requirements)
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, domain.UniqueStrings([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, domain.UniqueStrings(nil))
}
