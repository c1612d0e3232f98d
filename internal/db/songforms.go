package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sukalov/songform/internal/songform"
)

var (
	ErrNotLoggedIn = errors.New("user must be logged in")
	ErrNotFound    = errors.New("song form not found")
	ErrEmptyName   = errors.New("song name is required")
)

// SongForm is one saved song: its structure and lyrics under a name.
type SongForm struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	SongName  string             `json:"song_name"`
	Structure songform.Structure `json:"structure"`
	Lyrics    songform.Lyrics    `json:"lyrics"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Result is what the persistence operations report back to the UI layer.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewResult converts an operation error into a Result.
func NewResult(err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true}
}

// SongForms stores song forms per user. Rows are unique on (song_name, user_id).
type SongForms struct {
	db  *sql.DB
	now func() time.Time
}

func NewSongForms(database *sql.DB) *SongForms {
	return &SongForms{db: database, now: time.Now}
}

// Save inserts or replaces the song form named name for the user.
func (s *SongForms) Save(ctx context.Context, userID, name string, structure songform.Structure, lyrics songform.Lyrics) Result {
	return NewResult(s.save(ctx, userID, name, structure, lyrics))
}

func (s *SongForms) save(ctx context.Context, userID, name string, structure songform.Structure, lyrics songform.Lyrics) error {
	if userID == "" {
		return ErrNotLoggedIn
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if structure == nil {
		structure = songform.Structure{}
	}
	if lyrics == nil {
		lyrics = songform.Lyrics{}
	}

	structureJSON, err := json.Marshal(structure)
	if err != nil {
		return fmt.Errorf("failed to encode structure: %w", err)
	}
	lyricsJSON, err := json.Marshal(lyrics)
	if err != nil {
		return fmt.Errorf("failed to encode lyrics: %w", err)
	}

	now := s.now().UTC()
	query := `
		INSERT INTO song_forms (id, user_id, song_name, structure, lyrics, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (song_name, user_id) DO UPDATE SET
			structure = excluded.structure,
			lyrics = excluded.lyrics,
			updated_at = excluded.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		uuid.NewString(),
		userID,
		name,
		string(structureJSON),
		string(lyricsJSON),
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save song form %q: %w", name, err)
	}
	return nil
}

// List returns all of the user's song forms, newest first.
func (s *SongForms) List(ctx context.Context, userID string) ([]SongForm, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	query := `
		SELECT id, user_id, song_name, structure, lyrics, created_at, updated_at
		FROM song_forms WHERE user_id = ? ORDER BY created_at DESC, song_name
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	forms := []SongForm{}
	for rows.Next() {
		form, err := scanSongForm(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return forms, nil
}

// GetByName returns the user's song form with the given name.
func (s *SongForms) GetByName(ctx context.Context, userID, name string) (SongForm, error) {
	if userID == "" {
		return SongForm{}, ErrNotLoggedIn
	}

	query := `
		SELECT id, user_id, song_name, structure, lyrics, created_at, updated_at
		FROM song_forms WHERE user_id = ? AND song_name = ?
	`
	form, err := scanSongForm(s.db.QueryRowContext(ctx, query, userID, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return SongForm{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return form, err
}

// Delete removes the user's song form with the given name.
func (s *SongForms) Delete(ctx context.Context, userID, name string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM song_forms WHERE user_id = ? AND song_name = ?`,
		userID, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to delete song form: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Count returns how many song forms are stored across all users.
func (s *SongForms) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM song_forms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count song forms: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSongForm(row scanner) (SongForm, error) {
	var (
		form          SongForm
		structureJSON string
		lyricsJSON    string
		createdAt     int64
		updatedAt     int64
	)
	err := row.Scan(&form.ID, &form.UserID, &form.SongName, &structureJSON, &lyricsJSON, &createdAt, &updatedAt)
	if err != nil {
		return SongForm{}, err
	}
	form.CreatedAt = time.UnixMilli(createdAt).UTC()
	form.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	if err := json.Unmarshal([]byte(structureJSON), &form.Structure); err != nil {
		return SongForm{}, fmt.Errorf("failed to decode structure of %q: %w", form.SongName, err)
	}
	if err := json.Unmarshal([]byte(lyricsJSON), &form.Lyrics); err != nil {
		return SongForm{}, fmt.Errorf("failed to decode lyrics of %q: %w", form.SongName, err)
	}
	return form, nil
}
