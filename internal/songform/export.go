package songform

import (
	"regexp"
	"strings"
	"time"
)

var unsafeFileChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)

// ExportFileName names the downloadable lyrics file:
// "<song name or song>_<YYYY-MM-DD>.txt", the date taken in UTC.
func ExportFileName(songName string, at time.Time) string {
	name := strings.TrimSpace(songName)
	if name == "" {
		name = "song"
	}
	name = unsafeFileChars.ReplaceAllString(name, "_")
	return name + "_" + at.UTC().Format("2006-01-02") + ".txt"
}
