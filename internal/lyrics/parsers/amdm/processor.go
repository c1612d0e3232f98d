package amdm

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	chordRegex         = regexp.MustCompile(`(?s)<div[^>]*class="podbor__chord"[^>]*>.*?</div>`)
	authorCommentRegex = regexp.MustCompile(`(?s)<span[^>]*class="podbor__author-comment"[^>]*>.*?</span>`)
	keywordRegex       = regexp.MustCompile(`(?s)<div[^>]*class="podbor__keyword"[^>]*>(.*?)</div>`)
	blockCommentRegex  = regexp.MustCompile(`/\*[^*]*\*/`)
	breakRegex         = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// processHTMLContent turns the chords block into plain text: one lyric line
// per line, section markers on their own lines, chords and comments removed
func (p *Parser) processHTMLContent(originalHTML string) string {
	processed := chordRegex.ReplaceAllString(originalHTML, "\n")
	processed = authorCommentRegex.ReplaceAllString(processed, "")
	processed = blockCommentRegex.ReplaceAllString(processed, "")
	processed = keywordRegex.ReplaceAllString(processed, "\n$1\n")
	processed = breakRegex.ReplaceAllString(processed, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(processed))
	if err != nil {
		return ""
	}
	return processTextLines(doc.Text())
}

// processTextLines cleans every line and drops the ones left empty
func processTextLines(cleanText string) string {
	var processedLines []string
	for _, line := range strings.Split(cleanText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if _, ok := classifyMarker(trimmed); ok {
			processedLines = append(processedLines, trimmed)
			continue
		}

		if cleaned := cleanLine(trimmed); cleaned != "" {
			processedLines = append(processedLines, cleaned)
		}
	}
	return strings.Join(processedLines, "\n")
}
