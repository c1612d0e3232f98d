package songform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueLyricSections(t *testing.T) {
	tests := []struct {
		name      string
		structure Structure
		want      []string
	}{
		{"instrumentals excluded", Structure{"intro", "a", "b", "a", "outro"}, []string{"a", "b"}},
		{"shorthand resolves to instrumentals", Parse("1 2 3"), []string{}},
		{"raw numerals have no letter", Structure{"1", "2", "3"}, []string{}},
		{"case-insensitive markers", Structure{"Intro", "INTERLUDE", "Outro", "verse"}, []string{"verse"}},
		{"punctuation dropped", Structure{"!!", "chorus", "#1"}, []string{"chorus"}},
		{"case distinct labels", Structure{"A", "a", "A"}, []string{"A", "a"}},
		{"empty", Structure{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UniqueLyricSections(tt.structure))
		})
	}
}

func TestUniqueLyricSectionsIdempotent(t *testing.T) {
	for _, input := range []string{"a b a c", "1 verse 2 chorus verse 3", "x, X, !!, 9z"} {
		once := UniqueLyricSections(Parse(input))
		assert.Equal(t, once, UniqueLyricSections(Structure(once)), "input %q", input)
	}
}

func TestUniqueLyricSectionsNeverInstrumental(t *testing.T) {
	for _, input := range []string{"1-2-3", "Intro a interlude b OUTRO", "intro,intro,a"} {
		for _, section := range UniqueLyricSections(Parse(input)) {
			assert.False(t, IsInstrumental(section), "input %q gave %q", input, section)
		}
	}
}

func TestIsInstrumental(t *testing.T) {
	assert.True(t, IsInstrumental("intro"))
	assert.True(t, IsInstrumental("Interlude"))
	assert.True(t, IsInstrumental("OUTRO"))
	assert.False(t, IsInstrumental("intro2"))
	assert.False(t, IsInstrumental(""))
}
