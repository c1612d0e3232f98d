package amdm

import (
	"regexp"
	"strings"
)

var (
	chordSeparatorRegex  = regexp.MustCompile(`^[\s|]*$`)
	commentArtifactRegex = regexp.MustCompile(`/\*[^*]*\*?`)
	chordLineRegex       = regexp.MustCompile(`^([A-H](#|b)?(m|maj|min|dim|aug|sus)?\d*(/[A-H](#|b)?)?\s*)+$`)
)

// cleanLine strips comment leftovers, stray asterisks and slashes, and
// drops lines that hold only chords, bar separators or an unknown marker
func cleanLine(line string) string {
	if chordSeparatorRegex.MatchString(line) || chordLineRegex.MatchString(line) {
		return ""
	}
	if strings.HasPrefix(line, "[") && (strings.HasSuffix(line, "]") || strings.HasSuffix(line, "]:")) {
		return ""
	}

	cleaned := commentArtifactRegex.ReplaceAllString(line, "")
	cleaned = strings.ReplaceAll(cleaned, "*", "")
	cleaned = strings.ReplaceAll(cleaned, "/", "")
	return strings.TrimSpace(cleaned)
}
