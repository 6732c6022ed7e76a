package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is a Monday; schedules below use it as the reference day.
func monday(hour, min, sec, micro int) time.Time {
	return time.Date(2026, 8, 31, hour, min, sec, micro*1000, time.Local)
}

var mathMWF = Subject{ID: 1, SubjectCode: "MATH101", Days: "MWF", Time: "9:00 AM - 10:00 AM"}

func TestClassifyWindowBoundaries(t *testing.T) {
	subjects := []Subject{mathMWF}

	cases := map[string]struct {
		now      time.Time
		recorded bool
		status   string
	}{
		"early window opens at start-10m": {monday(8, 50, 0, 0), true, StatusPresent},
		"one second before early window":  {monday(8, 49, 59, 0), false, ""},
		"class start":                     {monday(9, 0, 0, 0), true, StatusLate},
		"mid class":                       {monday(9, 30, 0, 0), true, StatusLate},
		"class end inclusive":             {monday(10, 0, 0, 0), true, StatusLate},
		"one microsecond past end":        {monday(10, 0, 0, 1), false, ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := Classify(tc.now, subjects, nil)
			assert.Equal(t, tc.recorded, d.Recorded)
			if tc.recorded {
				assert.Equal(t, tc.status, d.Status)
			} else {
				assert.Equal(t, ReasonOutsideWindow, d.Reason)
			}
		})
	}
}

func TestClassifySkipsOtherDays(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local)
	d := Classify(tuesday, []Subject{mathMWF}, nil)
	assert.False(t, d.Recorded)
	assert.Equal(t, ReasonOutsideWindow, d.Reason)
}

func TestClassifyDayLetterSubstring(t *testing.T) {
	// Days are matched by substring, so Tuesday's "T" also hits a "TH"
	// (Thursday) schedule. Longstanding behavior of the packed day string.
	tuesday := time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local)
	thursdayOnly := Subject{ID: 7, SubjectCode: "CS101", Days: "TH", Time: "9:00 AM - 10:00 AM"}

	d := Classify(tuesday, []Subject{thursdayOnly}, nil)
	require.True(t, d.Recorded)
	assert.Equal(t, "CS101", d.Subject.SubjectCode)
}

func TestClassifyFirstMatchWins(t *testing.T) {
	overlapping := []Subject{
		{ID: 1, SubjectCode: "FIRST", Days: "M", Time: "9:00 AM - 10:00 AM"},
		{ID: 2, SubjectCode: "SECOND", Days: "M", Time: "9:00 AM - 11:00 AM"},
	}
	d := Classify(monday(9, 15, 0, 0), overlapping, nil)
	require.True(t, d.Recorded)
	assert.Equal(t, "FIRST", d.Subject.SubjectCode)
}

func TestClassifySkipsUnparseableSchedule(t *testing.T) {
	subjects := []Subject{
		{ID: 1, SubjectCode: "BROKEN", Days: "M", Time: "TBA"},
		{ID: 2, SubjectCode: "GOOD", Days: "M", Time: "9:00 AM - 10:00 AM"},
	}
	d := Classify(monday(9, 15, 0, 0), subjects, nil)
	require.True(t, d.Recorded)
	assert.Equal(t, "GOOD", d.Subject.SubjectCode)
}

func TestClassifyDuplicateGate(t *testing.T) {
	today := []Record{{UserID: 5, SubjectID: 1, Status: StatusLate, CreatedAt: monday(9, 5, 0, 0)}}

	d := Classify(monday(9, 30, 0, 0), []Subject{mathMWF}, today)
	assert.False(t, d.Recorded)
	assert.Equal(t, ReasonAlreadyRecorded, d.Reason)

	// A record for a different subject doesn't block.
	other := []Record{{UserID: 5, SubjectID: 99, Status: StatusLate}}
	d = Classify(monday(9, 30, 0, 0), []Subject{mathMWF}, other)
	assert.True(t, d.Recorded)
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(monday(13, 45, 12, 0))
	assert.Equal(t, monday(0, 0, 0, 0), start)
	assert.Equal(t, time.Duration(24)*time.Hour-time.Microsecond, end.Sub(start))
}

func TestParseTimeRange(t *testing.T) {
	start, end, ok := parseTimeRange("9:00 AM - 10:30 PM")
	require.True(t, ok)
	assert.Equal(t, 9*time.Hour, start)
	assert.Equal(t, 22*time.Hour+30*time.Minute, end)

	for _, bad := range []string{"", "9:00 AM", "9 AM - 10 AM", "25:00 AM - 26:00 AM"} {
		_, _, ok := parseTimeRange(bad)
		assert.False(t, ok, bad)
	}
}
