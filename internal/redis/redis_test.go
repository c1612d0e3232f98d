package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisClient "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukalov/songform/internal/songform"
	"github.com/sukalov/songform/internal/users"
)

func newTestManager(t *testing.T) (*DBManager, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redisClient.NewClient(&redisClient.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDBManagerWithClient(client), server
}

func TestDraftRoundTrip(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t)

	draft := users.NewDraft(42, "singer")
	draft.Structure = songform.Parse("a b a")
	draft.Lyrics = songform.Lyrics{"a": "x", "b": ""}
	draft.Stage = users.StageWritingLyrics

	require.NoError(t, manager.SetDraft(ctx, draft))

	got, ok, err := manager.GetDraft(ctx, 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, draft.Structure, got.Structure)
	assert.Equal(t, draft.Lyrics, got.Lyrics)
	assert.Equal(t, users.StageWritingLyrics, got.Stage)
}

func TestGetDraftMissing(t *testing.T) {
	manager, _ := newTestManager(t)

	_, ok, err := manager.GetDraft(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAllDraftsSkipsInvalid(t *testing.T) {
	ctx := context.Background()
	manager, server := newTestManager(t)

	require.NoError(t, manager.SetDraft(ctx, users.NewDraft(1, "a")))
	require.NoError(t, manager.SetDraft(ctx, users.NewDraft(2, "b")))
	server.HSet(draftsKey, "3", "{not json")

	drafts, err := manager.GetAllDrafts(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t)

	require.NoError(t, manager.SetDraft(ctx, users.NewDraft(1, "a")))
	require.NoError(t, manager.SetDraft(ctx, users.NewDraft(2, "b")))

	require.NoError(t, manager.DeleteDraft(ctx, 1))
	_, ok, err := manager.GetDraft(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, manager.ClearDrafts(ctx))
	drafts, err := manager.GetAllDrafts(ctx)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}
