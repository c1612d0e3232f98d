package songform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFull(t *testing.T) {
	tests := []struct {
		name      string
		structure Structure
		lyrics    Lyrics
		want      string
	}{
		{
			name:      "body and bare header",
			structure: Structure{"a", "b"},
			lyrics:    Lyrics{"a": "line1\nline2", "b": ""},
			want:      "[a]\nline1\nline2\n\n[b]",
		},
		{
			name:      "repeats and instrumentals",
			structure: Structure{"intro", "a", "a"},
			lyrics:    Lyrics{"a": "x"},
			want:      "[intro]\n\n[a]\nx\n\n[a]\nx",
		},
		{
			name:      "blank text counts as absent",
			structure: Structure{"a"},
			lyrics:    Lyrics{"a": " \n "},
			want:      "[a]",
		},
		{
			name:      "empty structure",
			structure: Structure{},
			lyrics:    nil,
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderFull(tt.structure, tt.lyrics))
		})
	}
}

func TestRenderLyricsOnly(t *testing.T) {
	tests := []struct {
		name      string
		structure Structure
		lyrics    Lyrics
		songName  string
		want      string
	}{
		{
			name:      "interlude between sections",
			structure: Structure{"a", "interlude", "b"},
			lyrics:    Lyrics{"a": "x", "b": "y"},
			songName:  "My Song",
			want:      "My Song\n\nx\n\n[interlude]\n\ny",
		},
		{
			name:      "no lyrics keeps header",
			structure: Structure{"a", "b"},
			lyrics:    Lyrics{"a": "", "b": ""},
			want:      "Song\n\n",
		},
		{
			name:      "adjacent sections get one blank line",
			structure: Structure{"a", "b", "a"},
			lyrics:    Lyrics{"a": "x", "b": "y"},
			songName:  "  Trimmed  ",
			want:      "Trimmed\n\nx\n\ny\n\nx",
		},
		{
			name:      "intro and outro emit nothing",
			structure: Structure{"intro", "a", "outro"},
			lyrics:    Lyrics{"a": "x"},
			want:      "Song\n\nx",
		},
		{
			name:      "leading interlude",
			structure: Structure{"interlude", "a"},
			lyrics:    Lyrics{"a": "x"},
			want:      "Song\n\n[interlude]\n\nx",
		},
		{
			name:      "trailing interlude",
			structure: Structure{"a", "Interlude"},
			lyrics:    Lyrics{"a": "x"},
			want:      "Song\n\nx\n\n[interlude]\n",
		},
		{
			name:      "consecutive interludes keep the per-token rule",
			structure: Structure{"a", "interlude", "interlude", "b"},
			lyrics:    Lyrics{"a": "x", "b": "y"},
			want:      "Song\n\nx\n\n[interlude]\n\n[interlude]\n\ny",
		},
		{
			name:      "skipped section after interlude",
			structure: Structure{"interlude", "c", "a"},
			lyrics:    Lyrics{"a": "x"},
			want:      "Song\n\n[interlude]\n\nx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderLyricsOnly(tt.structure, tt.lyrics, tt.songName))
		})
	}
}

func TestRenderUniqueSections(t *testing.T) {
	l := Lyrics{"a": "x", "b": "", "c": "z\nw"}

	assert.Equal(t, "[a]\nx\n\n[c]\nz\nw", RenderUniqueSections([]string{"a", "b", "c"}, l))
	assert.Equal(t, "", RenderUniqueSections([]string{"b"}, l))
}
