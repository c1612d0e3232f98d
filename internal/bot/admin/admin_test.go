package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukalov/songform/internal/bot"
	"github.com/sukalov/songform/internal/bot/bottest"
	"github.com/sukalov/songform/internal/state"
	"github.com/sukalov/songform/internal/users"
)

type nopStore struct{}

func (nopStore) SetDraft(context.Context, users.Draft) error         { return nil }
func (nopStore) GetAllDrafts(context.Context) ([]users.Draft, error) { return nil, nil }
func (nopStore) DeleteDraft(context.Context, int64) error            { return nil }
func (nopStore) ClearDrafts(context.Context) error                   { return nil }

type fixedCount int

func (c fixedCount) Count(context.Context) (int, error) { return int(c), nil }

func setup(t *testing.T) (*bottest.API, *bot.Bot, bot.Handlers, *state.StateManager) {
	t.Helper()
	api, b := bottest.New(t)

	drafts := state.NewStateManager(nopStore{})
	_, err := drafts.Start(context.Background(), 1, "a")
	require.NoError(t, err)
	_, err = drafts.Start(context.Background(), 2, "b")
	require.NoError(t, err)

	return api, b, NewAdminHandlers(drafts, fixedCount(7), []string{"boss"}).Handlers(), drafts
}

func TestStats(t *testing.T) {
	api, b, handlers, _ := setup(t)

	b.Dispatch(bottest.Command(10, "boss", "/stats"), handlers)
	assert.Equal(t, "drafts in progress: 2\nsaved songs: 7", api.Last(t).Text)

	b.Dispatch(bottest.Command(11, "stranger", "/stats"), handlers)
	assert.Equal(t, "you are not an admin", api.Last(t).Text)
}

func TestClearDraftsConfirm(t *testing.T) {
	api, b, handlers, drafts := setup(t)

	b.Dispatch(bottest.Command(10, "boss", "/clear_drafts"), handlers)
	assert.Contains(t, api.Last(t).Markup, "confirm_clear_drafts")

	b.Dispatch(bottest.Callback(10, "boss", "confirm_clear_drafts"), handlers)
	assert.Equal(t, "drafts cleared", api.Last(t).Text)
	assert.Equal(t, 0, drafts.Count())

	b.Dispatch(bottest.Callback(10, "boss", "confirm_clear_drafts"), handlers)
	assert.Equal(t, "that button no longer works", api.Last(t).Text)
}

func TestClearDraftsAbort(t *testing.T) {
	api, b, handlers, drafts := setup(t)

	b.Dispatch(bottest.Command(10, "boss", "/clear_drafts"), handlers)
	b.Dispatch(bottest.Callback(10, "boss", "abort_clear_drafts"), handlers)
	assert.Equal(t, "ok, cancelled", api.Last(t).Text)
	assert.Equal(t, 2, drafts.Count())
}

func TestClearDraftsNotAdmin(t *testing.T) {
	api, b, handlers, drafts := setup(t)

	b.Dispatch(bottest.Command(11, "stranger", "/clear_drafts"), handlers)
	assert.Equal(t, "you are not an admin", api.Last(t).Text)

	b.Dispatch(bottest.Callback(11, "stranger", "confirm_clear_drafts"), handlers)
	assert.Equal(t, "that button no longer works", api.Last(t).Text)
	assert.Equal(t, 2, drafts.Count())
}
