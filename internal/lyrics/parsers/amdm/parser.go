package amdm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sukalov/songform/internal/logger"
)

const chordsBlockSelector = `pre[itemprop="chordsBlock"]`

// Parser handles the HTML parsing and lyrics extraction
type Parser struct {
	client *Client
}

// NewParser creates a new AmDm parser
func NewParser() *Parser {
	return NewParserWithClient(NewClient())
}

func NewParserWithClient(client *Client) *Parser {
	return &Parser{client: client}
}

// ExtractSongFromAmdm fetches an AmDm.ru chords page and turns it into a
// structure with lyrics per section
func (p *Parser) ExtractSongFromAmdm(ctx context.Context, url string) (*LyricsResult, error) {
	html, err := p.client.FetchPage(ctx, url)
	if err != nil {
		return &LyricsResult{URL: url, Error: err.Error()}, err
	}

	result, err := p.ParsePage(html)
	if err != nil {
		logger.Error(fmt.Sprintf("ExtractSongFromAmdm: %v\nURL: %s", err, url))
		return &LyricsResult{URL: url, Error: err.Error()}, err
	}
	result.URL = url
	return result, nil
}

// ParsePage extracts the song from the HTML of a chords page
func (p *Parser) ParsePage(html string) (*LyricsResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(chordsBlockSelector).First()
	if selection.Length() == 0 {
		return nil, fmt.Errorf("target element not found")
	}

	originalHTML, err := selection.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to read chords block: %w", err)
	}

	text := p.processHTMLContent(originalHTML)
	structure, lyrics := SplitSections(text)

	return &LyricsResult{
		Title:     pageTitle(doc),
		Text:      text,
		Structure: structure,
		Lyrics:    lyrics,
		FetchedAt: time.Now(),
		Success:   true,
	}, nil
}

func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	title = strings.TrimSuffix(title, ", аккорды")
	title = strings.TrimSuffix(title, " аккорды")
	return strings.Join(strings.Fields(title), " ")
}
