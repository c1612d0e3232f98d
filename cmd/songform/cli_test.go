package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukalov/songform/internal/lyrics/parsers/amdm"
	"github.com/sukalov/songform/internal/songform"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	renderStructure, renderLyrics, renderName, renderOutput = "", "", "", ""
	renderMode, renderExport = "full", false
	importOutput, importFormat = "", "text"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeLyrics(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lyrics.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCmd(t *testing.T) {
	out, err := execute(t, "parse", "1-verse-chorus-2-verse-chorus-3")
	require.NoError(t, err)
	assert.Equal(t, "structure: intro - verse - chorus - interlude - verse - chorus - outro\nsections:  verse, chorus\n", out)

	out, err = execute(t, "parse", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "structure: intro - interlude - outro\nno sections need lyrics\n", out)

	out, err = execute(t, "parse", " ,- ")
	require.NoError(t, err)
	assert.Equal(t, "structure is empty\n", out)
}

func TestRenderCmd(t *testing.T) {
	lyricsFile := writeLyrics(t, `{"a": "x", "b": "y", "gone": "z"}`)

	tests := []struct {
		name string
		mode string
		want string
	}{
		{name: "full", mode: "full", want: "[a]\nx\n\n[interlude]\n\n[b]\ny\n"},
		{name: "lyrics only", mode: "lyrics", want: "My Song\n\nx\n\n[interlude]\n\ny\n"},
		{name: "unique", mode: "unique", want: "[a]\nx\n\n[b]\ny\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "render", "-s", "a-2-b", "-l", lyricsFile, "-n", "My Song", "-m", tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderCmdErrors(t *testing.T) {
	_, err := execute(t, "render", "-s", " , ", "-m", "full")
	assert.EqualError(t, err, "structure is empty")

	_, err = execute(t, "render", "-s", "a", "-m", "karaoke")
	assert.EqualError(t, err, `unknown render mode "karaoke"`)

	_, err = execute(t, "render", "-s", "a", "-l", writeLyrics(t, "[1, 2]"))
	assert.ErrorContains(t, err, "failed to parse lyrics file")
}

func TestRenderCmdExport(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	now = func() time.Time { return time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC) }
	defer func() { now = time.Now }()

	out, err := execute(t, "render", "-s", "a-2-b", "-l", writeLyrics(t, `{"a": "x\nxx", "b": "y"}`), "-n", " My Song ", "-m", "lyrics", "--export")
	require.NoError(t, err)
	assert.Equal(t, "saved to My Song_2026-10-14.txt (3 sections, 3 lines)\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "My Song_2026-10-14.txt"))
	require.NoError(t, err)
	assert.Equal(t, "My Song\n\nx\nxx\n\n[interlude]\n\ny", string(data))
}

type fakeExtractor struct {
	result *amdm.LyricsResult
}

func (f *fakeExtractor) ExtractSongFromAmdm(_ context.Context, url string) (*amdm.LyricsResult, error) {
	result := *f.result
	result.URL = url
	return &result, nil
}

func TestImportCmd(t *testing.T) {
	importer = &fakeExtractor{result: &amdm.LyricsResult{
		Title:     "Kino - Gruppa Krovi",
		Structure: songform.Structure{"intro", "verse1", "chorus"},
		Lyrics:    songform.Lyrics{"verse1": "teplo", "chorus": "gruppa krovi"},
		Success:   true,
	}}
	defer func() { importer = nil }()

	out, err := execute(t, "import", "https://amdm.ru/akkordi/kino/1/")
	require.NoError(t, err)
	assert.Equal(t, "Kino - Gruppa Krovi\nintro - verse1 - chorus\n\n[intro]\n\n[verse1]\nteplo\n\n[chorus]\ngruppa krovi\n", out)

	path := filepath.Join(t.TempDir(), "song.json")
	out, err = execute(t, "import", "https://amdm.ru/akkordi/kino/1/", "-f", "json", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "saved to "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"source": "amdm.ru"`)
	assert.Contains(t, string(data), `"verse1": "teplo"`)

	_, err = execute(t, "import", "https://example.com/song")
	assert.EqualError(t, err, "unsupported URL source: https://example.com/song")
}
