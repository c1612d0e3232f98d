package users

import (
	"time"

	"github.com/sukalov/songform/internal/songform"
)

const (
	StageAskingStructure = "asking_structure"
	StageWritingLyrics   = "writing_lyrics"
	StageFinal           = "final"
	StageAskingName      = "asking_name"
)

// Draft is one chat's wizard session: the structure being written, the
// lyrics per unique section and where the user is in the flow.
type Draft struct {
	ChatID       int64              `json:"chat_id"`
	Username     string             `json:"username"`
	Stage        string             `json:"stage"`
	RawStructure string             `json:"raw_structure"`
	Structure    songform.Structure `json:"structure"`
	Lyrics       songform.Lyrics    `json:"lyrics"`
	// Carry keeps text of sections dropped by a structure edit so it comes
	// back if the section is added again.
	Carry     songform.Lyrics `json:"carry,omitempty"`
	SongName  string          `json:"song_name"`
	Section   int             `json:"section"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewDraft starts a session waiting for the structure.
func NewDraft(chatID int64, username string) Draft {
	return Draft{
		ChatID:    chatID,
		Username:  username,
		Stage:     StageAskingStructure,
		Structure: songform.Structure{},
		Lyrics:    songform.Lyrics{},
	}
}

// Sections returns the unique sections that need lyrics.
func (d Draft) Sections() []string {
	return songform.UniqueLyricSections(d.Structure)
}

// CurrentSection returns the section the user is writing now.
func (d Draft) CurrentSection() (string, bool) {
	sections := d.Sections()
	if d.Section < 0 || d.Section >= len(sections) {
		return "", false
	}
	return sections[d.Section], true
}
