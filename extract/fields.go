package extract

import (
	"regexp"
	"strings"
	"sync"
)

// Fields maps the printed form labels to the extracted values.
type Fields map[string]string

// The registration form prints its labels in a fixed order, so each value is
// bounded by wherever the next expected label begins. Adding or reordering a
// label is a change to this table, not to the matching code.
type labelRule struct {
	Label string
	Stops []string // the labels that terminate this field's capture
}

var labelChain = []labelRule{
	{"Campus", []string{"Academic Term"}},
	{"Academic Term", []string{"Academic Year"}},
	{"Academic Year", []string{"Student Number"}},
	{"Student Number", []string{"LRN"}},
	{"LRN", []string{"Year/Status"}},
	{"Year/Status", []string{"Full Name"}},
	{"Full Name", []string{"Sex"}},
	{"Sex", []string{"Course"}},
	{"Course", []string{"Major"}},
	{"Major", []string{"Contact #"}},
	{"Contact #", []string{"Home Address"}},
	{"Home Address", nil}, // last label: runs to end of text
}

// RequiredLabels returns the closed label set in form order.
func RequiredLabels() []string {
	out := make([]string, 0, len(labelChain))
	for _, ls := range labelChain {
		out = append(out, ls.Label)
	}
	return out
}

var (
	labelRegexOnce sync.Once
	labelRegexes   map[string]*regexp.Regexp
)

func fieldPattern(rule labelRule) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?i)`)
	b.WriteString(regexp.QuoteMeta(rule.Label))
	b.WriteString(`\s*:?\s*(.*?)\s*(?:`)
	for _, stop := range rule.Stops {
		b.WriteString(regexp.QuoteMeta(stop))
		b.WriteString(`|`)
	}
	b.WriteString(`$)`)
	return regexp.MustCompile(b.String())
}

func compiledLabelRegexes() map[string]*regexp.Regexp {
	labelRegexOnce.Do(func() {
		labelRegexes = make(map[string]*regexp.Regexp, len(labelChain))
		for _, ls := range labelChain {
			labelRegexes[ls.Label] = fieldPattern(ls)
		}
	})
	return labelRegexes
}

// ExtractFields walks the label chain over normalized text and returns the
// values it found plus the labels it could not find. A missing label is an
// expected outcome (the scan may have cut a line off), not an error; the
// caller decides whether a partial map is usable.
func ExtractFields(text string) (Fields, []string) {
	res := compiledLabelRegexes()
	fields := Fields{}
	var missing []string

	for _, ls := range labelChain {
		m := res[ls.Label].FindStringSubmatch(text)
		if m == nil {
			missing = append(missing, ls.Label)
			continue
		}
		val := strings.TrimSpace(m[1])
		if val == "" {
			missing = append(missing, ls.Label)
			continue
		}
		fields[ls.Label] = val
	}
	return fields, missing
}
