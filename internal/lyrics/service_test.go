package lyrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukalov/songform/internal/lyrics/parsers/amdm"
	"github.com/sukalov/songform/internal/songform"
)

type fakeExtractor struct {
	result *amdm.LyricsResult
	err    error
	called string
}

func (f *fakeExtractor) ExtractSongFromAmdm(_ context.Context, url string) (*amdm.LyricsResult, error) {
	f.called = url
	return f.result, f.err
}

func TestImportAmdm(t *testing.T) {
	fake := &fakeExtractor{result: &amdm.LyricsResult{
		URL:       "https://amdm.ru/akkordi/x/1/",
		Title:     "X - Y",
		Structure: songform.Structure{"verse1", "chorus"},
		Lyrics:    songform.Lyrics{"verse1": "a", "chorus": "b"},
		Success:   true,
	}}
	service := NewServiceWithParser(fake)

	song, err := service.Import(context.Background(), " https://123.amdm.ru/akkordi/x/1/ ")
	require.NoError(t, err)

	assert.Equal(t, "https://123.amdm.ru/akkordi/x/1/", fake.called)
	assert.Equal(t, "amdm.ru", song.Source)
	assert.Equal(t, "X - Y", song.Title)
	assert.Equal(t, songform.Structure{"verse1", "chorus"}, song.Structure)
}

func TestImportUnsupported(t *testing.T) {
	service := NewServiceWithParser(&fakeExtractor{})

	_, err := service.Import(context.Background(), "https://example.com/song")
	assert.EqualError(t, err, "unsupported URL source: https://example.com/song")

	_, err = service.Import(context.Background(), "not a url")
	assert.EqualError(t, err, "invalid URL: not a url")

	_, err = service.Import(context.Background(), "https://notamdm.ru/x")
	assert.Error(t, err)
}

func TestImportErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewServiceWithParser(&fakeExtractor{err: boom}).Import(context.Background(), "https://amdm.ru/a")
	assert.ErrorIs(t, err, boom)

	empty := &fakeExtractor{result: &amdm.LyricsResult{Structure: songform.Structure{}}}
	_, err = NewServiceWithParser(empty).Import(context.Background(), "https://amdm.ru/a")
	assert.EqualError(t, err, "no song sections found at https://amdm.ru/a")
}
