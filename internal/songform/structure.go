package songform

import (
	"strings"
	"unicode"
)

// Structure is the ordered list of section labels that define a song's form.
// Repeats are meaningful and every element is non-empty.
type Structure []string

// Instrumental section names
const (
	SectionIntro     = "intro"
	SectionInterlude = "interlude"
	SectionOutro     = "outro"
)

var shorthand = map[string]string{
	"1": SectionIntro,
	"2": SectionInterlude,
	"3": SectionOutro,
}

// isDelimiter matches dashes, commas and Unicode white space, the byte
// order mark included and NEL excluded.
func isDelimiter(r rune) bool {
	switch r {
	case '-', ',', '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// Parse turns free-form input like "a - b, c 2 a" into a Structure.
// Tokens are separated by any run of dashes, commas or white space, and the
// numeric shorthands 1, 2 and 3 become intro, interlude and outro.
func Parse(input string) Structure {
	structure := Structure{}
	for _, token := range strings.FieldsFunc(input, isDelimiter) {
		if name, ok := shorthand[token]; ok {
			token = name
		}
		structure = append(structure, token)
	}
	return structure
}

// AddSection appends a quick-add section name to raw structure input.
// The name is lower-cased the way the quick-add buttons insert it.
func AddSection(raw, name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return raw
	}
	if strings.TrimSpace(raw) == "" {
		return name
	}
	return raw + ", " + name
}

// String renders the structure for previews, e.g. "a - b - a".
func (s Structure) String() string {
	return strings.Join(s, " - ")
}
