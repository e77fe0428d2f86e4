package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-backend/pkg/enums"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func sampleSessions() []Session {
	return []Session{
		{ID: 1, ScheduledDate: at(2024, time.March, 1, 0, 0), Status: enums.SessionStatusPending},
		{ID: 2, ScheduledDate: at(2024, time.March, 15, 14, 30), Status: enums.SessionStatusConfirmed},
		{ID: 3, ScheduledDate: time.Date(2024, time.March, 31, 23, 59, 59, 999999999, time.UTC), Status: enums.SessionStatusCompleted},
		{ID: 4, ScheduledDate: at(2024, time.April, 1, 0, 0), Status: enums.SessionStatusConfirmed},
		{ID: 5, ScheduledDate: at(2024, time.March, 15, 8, 0), Status: enums.SessionStatusCancelled},
	}
}

func sessionIDs(records []Session) []int {
	out := make([]int, len(records))
	for i, s := range records {
		out[i] = s.ID
	}
	return out
}

func TestFilterByStatus(t *testing.T) {
	records := sampleSessions()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sessionIDs(FilterByStatus(records, "all")))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sessionIDs(FilterByStatus(records, "")))
	assert.Equal(t, []int{2, 4}, sessionIDs(FilterByStatus(records, "confirmed")))
	assert.Empty(t, FilterByStatus(records, "archived"))
}

func TestOnDayIgnoresTimeOfDay(t *testing.T) {
	got := OnDay(sampleSessions(), at(2024, time.March, 15, 23, 0), time.UTC)
	assert.Equal(t, []int{2, 5}, sessionIDs(got))
}

func TestOnDayUsesLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-04-01T00:00Z is still March 31 in New York.
	got := OnDay(sampleSessions(), time.Date(2024, time.March, 31, 12, 0, 0, 0, ny), ny)
	assert.Equal(t, []int{3, 4}, sessionIDs(got))
}

func TestInMonthIsInclusiveAtBothEnds(t *testing.T) {
	got := InMonth(sampleSessions(), at(2024, time.March, 20, 0, 0), time.UTC)
	assert.Equal(t, []int{1, 2, 3, 5}, sessionIDs(got))

	april := InMonth(sampleSessions(), at(2024, time.April, 2, 0, 0), time.UTC)
	assert.Equal(t, []int{4}, sessionIDs(april))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(sampleSessions())
	assert.Equal(t, 1, counts[enums.SessionStatusPending])
	assert.Equal(t, 2, counts[enums.SessionStatusConfirmed])
	assert.Equal(t, 1, counts[enums.SessionStatusCompleted])
	assert.Equal(t, 1, counts[enums.SessionStatusCancelled])

	empty := CountByStatus(nil)
	assert.Len(t, empty, 4)
	assert.Zero(t, empty[enums.SessionStatusPending])
}

func TestMonthDays(t *testing.T) {
	feb := MonthDays(at(2024, time.February, 10, 0, 0), time.UTC)
	require.Len(t, feb, 29)
	assert.Equal(t, at(2024, time.February, 1, 0, 0), feb[0])
	assert.Equal(t, at(2024, time.February, 29, 0, 0), feb[28])

	assert.Len(t, MonthDays(at(2023, time.February, 1, 0, 0), nil), 28)
}
