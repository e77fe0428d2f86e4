package sessions

import (
	"time"

	"github.com/skillswap/skillswap-backend/pkg/enums"
)

const (
	MonthLayout = "2006-01"
	DayLayout   = "2006-01-02"
)

// FilterByStatus keeps sessions with the given status; "" and "all" keep everything.
func FilterByStatus(records []Session, status string) []Session {
	out := make([]Session, 0, len(records))
	for _, s := range records {
		if status == "" || status == enums.FilterAll || string(s.Status) == status {
			out = append(out, s)
		}
	}
	return out
}

// OnDay keeps sessions whose scheduled date falls on the same calendar day as
// day, both read in loc. Time of day is ignored.
func OnDay(records []Session, day time.Time, loc *time.Location) []Session {
	loc = locationOrUTC(loc)
	y, m, d := day.In(loc).Date()
	out := make([]Session, 0)
	for _, s := range records {
		sy, sm, sd := s.ScheduledDate.In(loc).Date()
		if sy == y && sm == m && sd == d {
			out = append(out, s)
		}
	}
	return out
}

// InMonth keeps sessions scheduled between the first and last instant of
// month's calendar month in loc, both ends inclusive.
func InMonth(records []Session, month time.Time, loc *time.Location) []Session {
	start, end := monthBounds(month, loc)
	out := make([]Session, 0)
	for _, s := range records {
		at := s.ScheduledDate
		if !at.Before(start) && !at.After(end) {
			out = append(out, s)
		}
	}
	return out
}

// CountByStatus tallies sessions per status. Every known status is present.
func CountByStatus(records []Session) map[enums.SessionStatus]int {
	counts := make(map[enums.SessionStatus]int, len(enums.SessionStatuses()))
	for _, status := range enums.SessionStatuses() {
		counts[status] = 0
	}
	for _, s := range records {
		counts[s.Status]++
	}
	return counts
}

// MonthDays lists every day of month's calendar month in loc.
func MonthDays(month time.Time, loc *time.Location) []time.Time {
	start, _ := monthBounds(month, loc)
	days := make([]time.Time, 0, 31)
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func monthBounds(month time.Time, loc *time.Location) (time.Time, time.Time) {
	loc = locationOrUTC(loc)
	y, m, _ := month.In(loc).Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
