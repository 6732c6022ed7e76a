package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// SubjectRow is one parsed line of the registration form's subject table.
type SubjectRow struct {
	SubjectCode string `json:"subject_code"`
	Section     string `json:"section"`
	LabUnits    int    `json:"lab_units"`
	LecUnits    int    `json:"lec_units"`
	Days        string `json:"days"`
	Time        string `json:"time"`
	Room        string `json:"room"`
}

// The table header as printed on the form. OCR tends to inject stray words
// between the column titles, so the match tolerates anything in between.
var reTableHeader = regexp.MustCompile(
	`(?is)subject/?s.*?section.*?lab\s*units.*?lec\s*units.*?days.*?time.*?room`)

// The fee summary follows the subject table; any of these phrases ends it.
var tableTerminators = []string{"tuition fee", "other fees", "total amount"}

// ParseSubjectTable locates the subject table in raw (newline-preserving)
// transcript text and parses its rows. Lines that don't look like a subject
// row are dropped without comment: OCR mangles table lines often enough that
// reporting them would drown the caller in noise.
func ParseSubjectTable(raw string) []SubjectRow {
	loc := reTableHeader.FindStringIndex(raw)
	if loc == nil {
		return nil
	}
	body := raw[loc[1]:]

	lower := strings.ToLower(body)
	end := len(body)
	for _, term := range tableTerminators {
		if i := strings.Index(lower, term); i >= 0 && i < end {
			end = i
		}
	}
	body = body[:end]

	var rows []SubjectRow
	for _, line := range strings.Split(body, "\n") {
		if row, ok := parseSubjectRow(line); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// parseSubjectRow tokenizes a single table line. Layout, by token position:
//
//	0=code 1=section 2=lab units 3=lec units 4=days 5..=time range, then room
//
// A "-" token splits the time range into start and end; the end time is at
// most two tokens ("10:00 AM"). Without a dash the time is assumed to be
// exactly tokens 5 and 6, which misreads rooms containing spaces.
func parseSubjectRow(line string) (SubjectRow, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 7 {
		return SubjectRow{}, false
	}
	lab, err := strconv.Atoi(tokens[2])
	if err != nil {
		return SubjectRow{}, false
	}
	lec, err := strconv.Atoi(tokens[3])
	if err != nil {
		return SubjectRow{}, false
	}

	row := SubjectRow{
		SubjectCode: tokens[0],
		Section:     tokens[1],
		LabUnits:    lab,
		LecUnits:    lec,
		Days:        strings.ToUpper(tokens[4]),
	}

	dash := -1
	for i, t := range tokens {
		if t == "-" {
			dash = i
			break
		}
	}

	if dash >= 0 {
		startFrom := 5
		if dash < startFrom {
			startFrom = dash
		}
		start := tokens[startFrom:dash]
		endTo := dash + 3
		if endTo > len(tokens) {
			endTo = len(tokens)
		}
		endTok := tokens[dash+1 : endTo]
		row.Time = strings.Join(start, " ") + " - " + strings.Join(endTok, " ")

		var roomTok []string
		for _, t := range tokens[endTo:] {
			if t == "-" {
				continue
			}
			roomTok = append(roomTok, t)
		}
		row.Room = strings.Join(roomTok, " ")
		return row, true
	}

	row.Time = strings.Join(tokens[5:7], " ")
	row.Room = strings.Join(tokens[7:], " ")
	return row, true
}
