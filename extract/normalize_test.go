package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJoinsPagesAndFlattensNewlines(t *testing.T) {
	pages := []string{"Campus: Main\nAcademic Term: 1st", "Student Number: 2021-00123"}
	got := Normalize(pages)
	assert.Equal(t, "Campus: Main Academic Term: 1st Student Number: 2021-00123", got)
}

func TestNormalizeCollapsesBlankFiller(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"filler before colon": {"Campus ____ : Main", "Campus: Main"},
		"filler after colon":  {"Campus : ____ Main", "Campus: Main"},
		"bare filler run":     {"Full Name ______ DELA CRUZ", "Full Name DELA CRUZ"},
		"crlf":                {"Sex: M\r\nCourse: BSIT", "Sex: M Course: BSIT"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize([]string{tc.in}))
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(nil))
	assert.Equal(t, "", Normalize([]string{"", ""}))
}
