package songform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLyrics(t *testing.T) {
	prev := Lyrics{"a": "kept", "gone": "dropped"}

	got := InitLyrics(prev, []string{"a", "b"})

	assert.Equal(t, Lyrics{"a": "kept", "b": ""}, got)
	assert.Equal(t, Lyrics{"a": "kept", "gone": "dropped"}, prev, "prev must not change")
}

func TestInitLyricsFromNil(t *testing.T) {
	assert.Equal(t, Lyrics{"x": ""}, InitLyrics(nil, []string{"x"}))
	assert.Equal(t, Lyrics{}, InitLyrics(nil, nil))
}

func TestMergeThenInitCarriesRemovedSections(t *testing.T) {
	carry := Lyrics{"b": "old b"}
	current := Lyrics{"a": "new a"}

	got := InitLyrics(Merge(carry, current), UniqueLyricSections(Parse("a b")))

	assert.Equal(t, Lyrics{"a": "new a", "b": "old b"}, got)
}

func TestMergeOverlayWins(t *testing.T) {
	base := Lyrics{"a": "1", "b": "2"}
	got := Merge(base, Lyrics{"b": "3"})

	assert.Equal(t, Lyrics{"a": "1", "b": "3"}, got)
	assert.Equal(t, "2", base["b"])
}

func TestWith(t *testing.T) {
	l := Lyrics{"a": "x"}
	updated := l.With("a", "y")

	assert.Equal(t, "y", updated["a"])
	assert.Equal(t, "x", l["a"])
}

func TestHasAnyLyrics(t *testing.T) {
	assert.False(t, HasAnyLyrics(nil))
	assert.False(t, HasAnyLyrics(Lyrics{"a": "", "b": " \n\t"}))
	assert.True(t, HasAnyLyrics(Lyrics{"a": "", "b": "la"}))
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 0, LineCount(""))
	assert.Equal(t, 2, LineCount("one\n\n  \ntwo\n"))
	assert.Equal(t, 1, LineCount("   solo   "))
}

func TestComputeProgress(t *testing.T) {
	sections := []string{"a", "b", "c"}
	l := Lyrics{"a": "l1\nl2", "b": "  ", "c": "l3"}

	assert.Equal(t, Progress{Completed: 2, Total: 3, Lines: 3}, ComputeProgress(sections, l))
}
