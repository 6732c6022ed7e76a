package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableHeader = "Subject/s Section Lab Units Lec Units Days Time Room"

func TestParseSubjectTableDashSeparatedTime(t *testing.T) {
	raw := tableHeader + "\n" +
		"MATH101 A1 3 3 MWF 9:00 AM - 10:00 AM - Room 204\n" +
		"Tuition Fee 10,000.00"

	rows := ParseSubjectTable(raw)
	require.Len(t, rows, 1)

	assert.Equal(t, "MATH101", rows[0].SubjectCode)
	assert.Equal(t, "A1", rows[0].Section)
	assert.Equal(t, 3, rows[0].LabUnits)
	assert.Equal(t, 3, rows[0].LecUnits)
	assert.Equal(t, "MWF", rows[0].Days)
	assert.Equal(t, "9:00 AM - 10:00 AM", rows[0].Time)
	assert.Equal(t, "Room 204", rows[0].Room)
}

func TestParseSubjectTableSkipsShortLines(t *testing.T) {
	raw := tableHeader + "\n" +
		"MATH101 A1 3\n" + // too few tokens
		"noise\n" +
		"\n" +
		"CS102 B1 0 3 TTH 1:00 PM - 2:30 PM IT204\n"

	rows := ParseSubjectTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS102", rows[0].SubjectCode)
	assert.Equal(t, "TTH", rows[0].Days)
	assert.Equal(t, "1:00 PM - 2:30 PM", rows[0].Time)
	assert.Equal(t, "IT204", rows[0].Room)
}

func TestParseSubjectTableSkipsNonIntegerUnits(t *testing.T) {
	raw := tableHeader + "\n" +
		"MATH101 A1 x 3 MWF 9:00 AM - 10:00 AM R1\n" +
		"MATH102 A1 3 y MWF 9:00 AM - 10:00 AM R1\n"

	assert.Empty(t, ParseSubjectTable(raw))
}

func TestParseSubjectTableNoDashFallback(t *testing.T) {
	// Without a dash token, the time is assumed to be exactly two tokens.
	raw := tableHeader + "\nPE1 C1 0 2 Sat 7:30AM Gym Annex\n"

	rows := ParseSubjectTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "SAT", rows[0].Days)
	assert.Equal(t, "7:30AM Gym", rows[0].Time)
	assert.Equal(t, "Annex", rows[0].Room)
}

func TestParseSubjectTableHeaderTolerance(t *testing.T) {
	raw := "Enrolled Subject/s and Section with Lab Units / Lec Units plus Days, Time and Room below\n" +
		"CS101 A1 1 2 MW 8:00 AM - 9:00 AM R2\n"

	rows := ParseSubjectTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS101", rows[0].SubjectCode)
}

func TestParseSubjectTableStopsAtFeeSummary(t *testing.T) {
	raw := tableHeader + "\n" +
		"CS101 A1 1 2 MW 8:00 AM - 9:00 AM R2\n" +
		"Other Fees\n" +
		"CS999 A1 1 2 MW 8:00 AM - 9:00 AM R2\n"

	rows := ParseSubjectTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS101", rows[0].SubjectCode)
}

func TestParseSubjectTableNoHeader(t *testing.T) {
	assert.Empty(t, ParseSubjectTable("CS101 A1 1 2 MW 8:00 AM - 9:00 AM R2"))
}
