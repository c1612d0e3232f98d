package songform

import "strings"

// IsInstrumental reports whether a token is one of the instrumental markers
// that never get a lyrics entry.
func IsInstrumental(token string) bool {
	switch strings.ToLower(token) {
	case SectionIntro, SectionInterlude, SectionOutro:
		return true
	}
	return false
}

func isInterlude(token string) bool {
	return strings.EqualFold(token, SectionInterlude)
}

func hasLetter(token string) bool {
	for i := 0; i < len(token); i++ {
		c := token[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// UniqueLyricSections returns the distinct sections of a structure that need
// lyrics, in first-occurrence order. Instrumental markers and tokens with no
// ASCII letter are left out.
func UniqueLyricSections(structure Structure) []string {
	seen := make(map[string]bool, len(structure))
	sections := []string{}
	for _, token := range structure {
		if seen[token] {
			continue
		}
		seen[token] = true

		if IsInstrumental(token) || !hasLetter(token) {
			continue
		}
		sections = append(sections, token)
	}
	return sections
}
