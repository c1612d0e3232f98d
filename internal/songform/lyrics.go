package songform

import "strings"

// Lyrics maps a section label to its multi-line text.
type Lyrics map[string]string

// Progress summarizes how far the lyrics of the unique sections are written.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Lines     int `json:"lines"`
}

// InitLyrics builds a map keyed exactly to sections, reusing the text from
// prev where a section already had some. prev is not modified.
func InitLyrics(prev Lyrics, sections []string) Lyrics {
	lyrics := make(Lyrics, len(sections))
	for _, section := range sections {
		lyrics[section] = prev[section]
	}
	return lyrics
}

// Merge returns a new map holding base with overlay applied on top.
// Callers that keep text across structure edits merge before InitLyrics.
func Merge(base, overlay Lyrics) Lyrics {
	merged := make(Lyrics, len(base)+len(overlay))
	for section, text := range base {
		merged[section] = text
	}
	for section, text := range overlay {
		merged[section] = text
	}
	return merged
}

// With returns a copy of l with one section set to text.
func (l Lyrics) With(section, text string) Lyrics {
	updated := Merge(l, nil)
	updated[section] = text
	return updated
}

// HasAnyLyrics reports whether at least one entry has non-blank text.
func HasAnyLyrics(l Lyrics) bool {
	for _, text := range l {
		if !isBlank(text) {
			return true
		}
	}
	return false
}

// LineCount counts the non-blank lines of a lyrics entry.
func LineCount(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// ComputeProgress reports completed sections and written lines over the
// unique sections.
func ComputeProgress(sections []string, l Lyrics) Progress {
	progress := Progress{Total: len(sections)}
	for _, section := range sections {
		text := l[section]
		if !isBlank(text) {
			progress.Completed++
		}
		progress.Lines += LineCount(text)
	}
	return progress
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
