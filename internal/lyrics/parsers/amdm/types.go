package amdm

import (
	"time"

	"github.com/sukalov/songform/internal/songform"
)

// SectionType is a section marker as it appears on amdm.ru pages
type SectionType string

const (
	SectionVerse  SectionType = "Куплет"
	SectionChorus SectionType = "Припев"
	SectionBridge SectionType = "Переход"
	SectionIntro  SectionType = "Вступление"
	SectionSolo   SectionType = "Проигрыш"
	SectionOutro  SectionType = "Кода"
)

var sectionTypes = []SectionType{SectionVerse, SectionChorus, SectionBridge, SectionIntro, SectionSolo, SectionOutro}

// Label is the structure token the section type becomes
func (t SectionType) Label() string {
	switch t {
	case SectionVerse:
		return "verse"
	case SectionChorus:
		return "chorus"
	case SectionBridge:
		return "bridge"
	case SectionIntro:
		return songform.SectionIntro
	case SectionSolo:
		return songform.SectionInterlude
	case SectionOutro:
		return songform.SectionOutro
	}
	return ""
}

// Instrumental reports whether the section carries no lyrics
func (t SectionType) Instrumental() bool {
	return songform.IsInstrumental(t.Label())
}

// LyricsResult represents the extracted song
type LyricsResult struct {
	URL       string             `json:"url"`
	Title     string             `json:"title"`
	Text      string             `json:"text"`
	Structure songform.Structure `json:"structure"`
	Lyrics    songform.Lyrics    `json:"lyrics"`
	FetchedAt time.Time          `json:"fetched_at"`
	Success   bool               `json:"success"`
	Error     string             `json:"error,omitempty"`
}
