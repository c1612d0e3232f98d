package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/songform"
	"github.com/sukalov/songform/internal/users"
	"go.uber.org/zap"
)

var (
	ErrNoDraft        = errors.New("no song in progress")
	ErrUnknownSection = errors.New("section is not part of the structure")
	ErrAllWritten     = errors.New("every section is written")
)

// DraftStore persists drafts between restarts.
type DraftStore interface {
	SetDraft(ctx context.Context, draft users.Draft) error
	GetAllDrafts(ctx context.Context) ([]users.Draft, error)
	DeleteDraft(ctx context.Context, chatID int64) error
	ClearDrafts(ctx context.Context) error
}

// StateManager holds every chat's draft in memory and writes each change
// through to the store. Edits are applied one at a time.
type StateManager struct {
	mu     sync.RWMutex
	drafts map[int64]users.Draft
	store  DraftStore
	now    func() time.Time
}

func NewStateManager(store DraftStore) *StateManager {
	return &StateManager{
		drafts: make(map[int64]users.Draft),
		store:  store,
		now:    time.Now,
	}
}

// Init loads the stored drafts.
func (sm *StateManager) Init(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	drafts, err := sm.store.GetAllDrafts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load drafts: %w", err)
	}
	for _, draft := range drafts {
		sm.drafts[draft.ChatID] = draft
	}
	return nil
}

func (sm *StateManager) Get(chatID int64) (users.Draft, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	draft, ok := sm.drafts[chatID]
	return draft, ok
}

func (sm *StateManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.drafts)
}

// Start begins a fresh draft for the chat, discarding any previous one.
func (sm *StateManager) Start(ctx context.Context, chatID int64, username string) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.save(ctx, users.NewDraft(chatID, username))
}

// SetStructure parses raw and rekeys the lyrics to the new unique sections.
// Text of sections that drop out is kept in the carry map and restored if
// they are added back.
func (sm *StateManager) SetStructure(ctx context.Context, chatID int64, username, raw string) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		draft = users.NewDraft(chatID, username)
	}

	structure := songform.Parse(raw)
	sections := songform.UniqueLyricSections(structure)
	pool := songform.Merge(draft.Carry, draft.Lyrics)

	draft.RawStructure = raw
	draft.Structure = structure
	draft.Lyrics = songform.InitLyrics(pool, sections)
	draft.Carry = songform.Lyrics{}
	for section, text := range pool {
		if _, kept := draft.Lyrics[section]; !kept && text != "" {
			draft.Carry[section] = text
		}
	}
	draft.Section = 0

	switch {
	case len(structure) == 0:
		draft.Stage = users.StageAskingStructure
	case len(sections) == 0:
		draft.Stage = users.StageFinal
	default:
		draft.Stage = users.StageWritingLyrics
	}

	return sm.save(ctx, draft)
}

// SetLyrics replaces the text of one section.
func (sm *StateManager) SetLyrics(ctx context.Context, chatID int64, section, text string) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		return users.Draft{}, ErrNoDraft
	}
	if _, known := draft.Lyrics[section]; !known {
		return draft, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	draft.Lyrics = draft.Lyrics.With(section, text)
	return sm.save(ctx, draft)
}

// Advance moves to the next section, or to the final stage after the last one.
func (sm *StateManager) Advance(ctx context.Context, chatID int64) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		return users.Draft{}, ErrNoDraft
	}
	return sm.save(ctx, advance(draft))
}

// WriteCurrent stores text for the section being written and moves on.
// Both steps happen under one lock, so back to back messages from a chat
// fill consecutive sections. It returns the section that was written.
func (sm *StateManager) WriteCurrent(ctx context.Context, chatID int64, text string) (string, users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		return "", users.Draft{}, ErrNoDraft
	}
	section, ok := draft.CurrentSection()
	if !ok {
		return "", draft, ErrAllWritten
	}
	draft.Lyrics = draft.Lyrics.With(section, text)
	draft, err := sm.save(ctx, advance(draft))
	return section, draft, err
}

func advance(draft users.Draft) users.Draft {
	draft.Section++
	if draft.Section >= len(draft.Sections()) {
		draft.Section = len(draft.Sections())
		draft.Stage = users.StageFinal
	} else {
		draft.Stage = users.StageWritingLyrics
	}
	return draft
}

// Back steps to the previous section, or back to the structure from the first one.
func (sm *StateManager) Back(ctx context.Context, chatID int64) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		return users.Draft{}, ErrNoDraft
	}

	switch draft.Stage {
	case users.StageFinal, users.StageAskingName:
		draft.Section = len(draft.Sections()) - 1
		draft.Stage = users.StageWritingLyrics
		if draft.Section < 0 {
			draft.Section = 0
			draft.Stage = users.StageAskingStructure
		}
	case users.StageWritingLyrics:
		draft.Section--
		if draft.Section < 0 {
			draft.Section = 0
			draft.Stage = users.StageAskingStructure
		}
	}
	return sm.save(ctx, draft)
}

// GoTo jumps to the writing stage of a given section.
func (sm *StateManager) GoTo(ctx context.Context, chatID int64, section string) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		return users.Draft{}, ErrNoDraft
	}
	for i, s := range draft.Sections() {
		if s == section {
			draft.Section = i
			draft.Stage = users.StageWritingLyrics
			return sm.save(ctx, draft)
		}
	}
	return draft, fmt.Errorf("%w: %s", ErrUnknownSection, section)
}

func (sm *StateManager) SetName(ctx context.Context, chatID int64, name string) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		return users.Draft{}, ErrNoDraft
	}
	draft.SongName = name
	return sm.save(ctx, draft)
}

func (sm *StateManager) SetStage(ctx context.Context, chatID int64, stage string) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft, ok := sm.drafts[chatID]
	if !ok {
		return users.Draft{}, ErrNoDraft
	}
	draft.Stage = stage
	return sm.save(ctx, draft)
}

// Load replaces the chat's draft with a saved or imported song.
func (sm *StateManager) Load(ctx context.Context, chatID int64, username, name string, structure songform.Structure, lyrics songform.Lyrics) (users.Draft, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	draft := users.NewDraft(chatID, username)
	draft.SongName = name
	draft.RawStructure = structure.String()
	draft.Structure = structure
	draft.Lyrics = songform.InitLyrics(lyrics, songform.UniqueLyricSections(structure))
	draft.Stage = users.StageFinal
	draft.Section = len(draft.Sections())
	return sm.save(ctx, draft)
}

// Reset drops the chat's draft.
func (sm *StateManager) Reset(ctx context.Context, chatID int64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.drafts, chatID)
	if err := sm.store.DeleteDraft(ctx, chatID); err != nil {
		logger.Error("error happened while deleting draft from redis", zap.Int64("chat_id", chatID), zap.Error(err))
		return err
	}
	return nil
}

// Clear drops every draft.
func (sm *StateManager) Clear(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.drafts = make(map[int64]users.Draft)
	if err := sm.store.ClearDrafts(ctx); err != nil {
		logger.Error("error happened while clearing drafts in redis", zap.Error(err))
		return err
	}
	return nil
}

// save must be called with mu held.
func (sm *StateManager) save(ctx context.Context, draft users.Draft) (users.Draft, error) {
	draft.UpdatedAt = sm.now()
	sm.drafts[draft.ChatID] = draft
	if err := sm.store.SetDraft(ctx, draft); err != nil {
		logger.Error("error happened while saving draft to redis", zap.Int64("chat_id", draft.ChatID), zap.Error(err))
		return draft, err
	}
	return draft, nil
}
