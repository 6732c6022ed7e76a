package extract

import (
	"regexp"
	"strings"
)

// OCR text arrives with hard line breaks and the form's blank-filler
// underscores ("Student Number ___ : 2021-00123"). Field matching works on a
// single flattened line with the filler removed.
var (
	reBlankBeforeColon = regexp.MustCompile(`\s*_{2,}\s*:\s*`)
	reColonBlank       = regexp.MustCompile(`\s*:\s*_{2,}\s*`)
	reUnderscores      = regexp.MustCompile(`_{2,}`)
	reSpaces           = regexp.MustCompile(`[ \t]{2,}`)
)

// Normalize flattens OCR page texts into one searchable line.
// It never fails; labels that were unreadable simply won't match downstream.
func Normalize(pages []string) string {
	joined := strings.Join(pages, " ")
	joined = strings.ReplaceAll(joined, "\r\n", " ")
	joined = strings.ReplaceAll(joined, "\n", " ")

	joined = reBlankBeforeColon.ReplaceAllString(joined, ": ")
	joined = reColonBlank.ReplaceAllString(joined, ": ")
	joined = reUnderscores.ReplaceAllString(joined, "")
	joined = reSpaces.ReplaceAllString(joined, " ")

	return strings.TrimSpace(joined)
}
