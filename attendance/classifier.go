// Package attendance classifies a facial-detection event against a student's
// weekly subject schedule and records at most one attendance entry per
// subject per day.
package attendance

import (
	"strings"
	"time"
)

// Status labels kept exactly as the product reports them: a detection inside
// the 10-minute grace window before class is "Present", a detection between
// the scheduled start and end is "Late".
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
)

// Rejection reasons shown to the user.
const (
	ReasonOutsideWindow   = "outside valid time window"
	ReasonAlreadyRecorded = "already recorded today"
)

// earlyGrace is how long before the scheduled start a detection still counts.
const earlyGrace = 10 * time.Minute

// Subject is a read-only snapshot of one enrolled subject's schedule.
type Subject struct {
	ID          uint
	SubjectCode string
	Days        string // packed day letters, e.g. "MWF"
	Time        string // "h:mm AM/PM - h:mm AM/PM"
}

// Record is one attendance entry for a (user, subject) pair.
type Record struct {
	ID        uint
	UserID    uint
	SubjectID uint
	Status    string
	CreatedAt time.Time
}

// Decision is the outcome of one classification attempt.
type Decision struct {
	Recorded bool
	Status   string
	Subject  *Subject
	Reason   string
}

// dayLetter maps a timestamp to the schedule's day code: the first letter of
// the weekday name, upper-cased. Both Tuesday and Thursday map to "T", which
// combined with the substring test below makes "T" match a "Th" schedule.
// That matches how schedules have always been stored and checked here.
func dayLetter(t time.Time) string {
	return strings.ToUpper(t.Weekday().String()[:1])
}

// clockOf reduces a timestamp to its time-of-day offset from midnight.
func clockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// parseTimeRange parses a schedule string like "9:00 AM - 10:00 AM" into
// offsets from midnight.
func parseTimeRange(s string) (start, end time.Duration, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	st, err := time.Parse("3:04 PM", strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	en, err := time.Parse("3:04 PM", strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return clockOf(st), clockOf(en), true
}

// matchWindow finds the first subject (in the given order) whose schedule
// covers now. Subjects scheduled on another day, or whose time string can't
// be parsed, are skipped without comment.
func matchWindow(now time.Time, subjects []Subject) (Subject, string, bool) {
	day := dayLetter(now)
	cur := clockOf(now)

	for _, sub := range subjects {
		if !strings.Contains(sub.Days, day) {
			continue
		}
		start, end, ok := parseTimeRange(sub.Time)
		if !ok {
			continue
		}
		switch {
		case start-earlyGrace <= cur && cur < start:
			return sub, StatusPresent, true
		case start <= cur && cur <= end:
			return sub, StatusLate, true
		}
	}
	return Subject{}, "", false
}

// Classify evaluates a detection at now against the user's enrolled subjects
// and the attendance records already written today. Pure: persistence and
// locking live in Service.
func Classify(now time.Time, subjects []Subject, today []Record) Decision {
	sub, status, ok := matchWindow(now, subjects)
	if !ok {
		return Decision{Reason: ReasonOutsideWindow}
	}
	for _, r := range today {
		if r.SubjectID == sub.ID {
			return Decision{Subject: &sub, Reason: ReasonAlreadyRecorded}
		}
	}
	return Decision{Recorded: true, Status: status, Subject: &sub}
}

// DayRange returns the calendar-day bounds for t in t's location:
// [midnight, 23:59:59.999999].
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24*time.Hour - time.Microsecond)
}
