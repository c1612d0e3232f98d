package lyrics

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/lyrics/parsers/amdm"
	"github.com/sukalov/songform/internal/songform"
	"go.uber.org/zap"
)

// ImportedSong is a song pulled from a chords site, ready to become a draft
type ImportedSong struct {
	URL       string             `json:"url"`
	Title     string             `json:"title"`
	Source    string             `json:"source"`
	Structure songform.Structure `json:"structure"`
	Lyrics    songform.Lyrics    `json:"lyrics"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// SongExtractor is implemented by every site parser
type SongExtractor interface {
	ExtractSongFromAmdm(ctx context.Context, url string) (*amdm.LyricsResult, error)
}

// Service handles song import for different sources
type Service struct {
	amdmParser SongExtractor
}

// NewService creates a new lyrics service
func NewService() *Service {
	return NewServiceWithParser(amdm.NewParser())
}

func NewServiceWithParser(amdmParser SongExtractor) *Service {
	return &Service{amdmParser: amdmParser}
}

// Import fetches a song page and splits it into structure and lyrics
func (s *Service) Import(ctx context.Context, rawURL string) (*ImportedSong, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", rawURL)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "amdm.ru" || strings.HasSuffix(host, ".amdm.ru") {
		return s.importFromAmdm(ctx, parsed.String())
	}

	logger.Debug("unsupported import source", zap.String("url", rawURL))
	return nil, fmt.Errorf("unsupported URL source: %s", rawURL)
}

func (s *Service) importFromAmdm(ctx context.Context, url string) (*ImportedSong, error) {
	result, err := s.amdmParser.ExtractSongFromAmdm(ctx, url)
	if err != nil {
		return nil, err
	}
	if len(result.Structure) == 0 {
		return nil, fmt.Errorf("no song sections found at %s", url)
	}

	logger.Debug("imported song",
		zap.String("url", url),
		zap.Int("sections", len(result.Structure)),
		zap.Int("unique", len(result.Lyrics)))

	return &ImportedSong{
		URL:       result.URL,
		Title:     result.Title,
		Source:    "amdm.ru",
		Structure: result.Structure,
		Lyrics:    result.Lyrics,
		FetchedAt: result.FetchedAt,
	}, nil
}
