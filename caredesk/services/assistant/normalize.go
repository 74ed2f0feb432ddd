package assistant

import (
	"regexp"
	"strings"
)

var (
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw assistant text for display: every line ending becomes
// a single "\n", runs of three or more newlines collapse to exactly two, and
// surrounding whitespace is trimmed. Idempotent.
func Normalize(raw string) string {
	s := lineEndings.Replace(raw)
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
