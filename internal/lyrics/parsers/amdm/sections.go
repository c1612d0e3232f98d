package amdm

import (
	"strconv"
	"strings"

	"github.com/sukalov/songform/internal/songform"
)

type block struct {
	kind  SectionType
	lines []string
}

// classifyMarker recognizes lines like "[Куплет 2]:" or "[Припев]"
func classifyMarker(line string) (SectionType, bool) {
	if !strings.HasPrefix(line, "[") {
		return "", false
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimSpace(line[1:end]), ":")
	for _, t := range sectionTypes {
		if strings.HasPrefix(name, string(t)) {
			return t, true
		}
	}
	return "", false
}

// SplitSections reads extracted page text and builds the song structure.
// Verses are numbered verse1, verse2, ...; a repeated chorus or bridge with
// the same text, or a bare repeat marker, reuses the earlier label.
// Text before the first marker is the first verse.
func SplitSections(text string) (songform.Structure, songform.Lyrics) {
	var blocks []*block
	var current *block

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if kind, ok := classifyMarker(line); ok {
			current = &block{kind: kind}
			blocks = append(blocks, current)
			continue
		}
		if current == nil {
			current = &block{kind: SectionVerse}
			blocks = append(blocks, current)
		}
		if !current.kind.Instrumental() {
			current.lines = append(current.lines, line)
		}
	}

	structure := songform.Structure{}
	lyrics := songform.Lyrics{}
	byText := make(map[SectionType]map[string]string)
	lastLabel := make(map[SectionType]string)
	counts := make(map[SectionType]int)

	for _, b := range blocks {
		if b.kind.Instrumental() {
			structure = append(structure, b.kind.Label())
			continue
		}

		body := strings.Join(b.lines, "\n")
		if body == "" && lastLabel[b.kind] != "" {
			structure = append(structure, lastLabel[b.kind])
			continue
		}
		if byText[b.kind] == nil {
			byText[b.kind] = make(map[string]string)
		}
		if label, ok := byText[b.kind][body]; ok && body != "" {
			structure = append(structure, label)
			lastLabel[b.kind] = label
			continue
		}

		counts[b.kind]++
		label := b.kind.Label()
		if b.kind == SectionVerse || counts[b.kind] > 1 {
			label += strconv.Itoa(counts[b.kind])
		}

		byText[b.kind][body] = label
		lastLabel[b.kind] = label
		lyrics[label] = body
		structure = append(structure, label)
	}

	return structure, lyrics
}
