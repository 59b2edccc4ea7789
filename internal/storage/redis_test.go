package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

func setupTestRedis(t *testing.T) *RedisStorage {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStorage("redis://"+mr.Addr(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testSlot(id, name string, modified time.Time) SaveSlot {
	s := scenario.New()
	s.Outline.Title = name
	return SaveSlot{
		ID:           id,
		Name:         name,
		LastModified: modified,
		Data:         s,
	}
}

func TestRedisStorage_SaveAndGetSlot(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.SaveSlot(ctx, testSlot("slot-1", "The Hollow Chapel", now)))

	loaded, err := store.GetSlot(ctx, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, "The Hollow Chapel", loaded.Name)
	assert.True(t, loaded.LastModified.Equal(now))
	require.NotNil(t, loaded.Data)
	assert.Equal(t, "The Hollow Chapel", loaded.Data.Outline.Title)
	assert.Equal(t, int64(scenario.DefaultMapSeed), loaded.Data.MapSeed)
}

func TestRedisStorage_SaveOverwrites(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSlot(ctx, testSlot("slot-1", "First", time.Now())))
	require.NoError(t, store.SaveSlot(ctx, testSlot("slot-1", "Second", time.Now())))

	loaded, err := store.GetSlot(ctx, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.Name)

	infos, err := store.ListSlots(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestRedisStorage_GetMissingSlot(t *testing.T) {
	store := setupTestRedis(t)

	_, err := store.GetSlot(context.Background(), "absent")
	var notFound *ErrSlotNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "absent", notFound.ID)
}

func TestRedisStorage_ListSlotsNewestFirst(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	base := time.Now().UTC()
	require.NoError(t, store.SaveSlot(ctx, testSlot("old", "Old", base.Add(-2*time.Hour))))
	require.NoError(t, store.SaveSlot(ctx, testSlot("new", "New", base)))
	require.NoError(t, store.SaveSlot(ctx, testSlot("mid", "Mid", base.Add(-time.Hour))))

	infos, err := store.ListSlots(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{infos[0].ID, infos[1].ID, infos[2].ID})
}

func TestRedisStorage_DeleteSlot(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSlot(ctx, testSlot("slot-1", "Doomed", time.Now())))
	require.NoError(t, store.DeleteSlot(ctx, "slot-1"))

	_, err := store.GetSlot(ctx, "slot-1")
	assert.Error(t, err)

	infos, err := store.ListSlots(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)

	var notFound *ErrSlotNotFound
	assert.True(t, errors.As(store.DeleteSlot(ctx, "slot-1"), &notFound))
}

func TestRedisStorage_BareAddr(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStorage(mr.Addr(), logger)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.NoError(t, store.Ping(context.Background()))
}

func TestMockStorage_RoundTrip(t *testing.T) {
	store := NewMockStorage()
	ctx := context.Background()

	require.NoError(t, store.SaveSlot(ctx, testSlot("m1", "Mock", time.Now())))
	loaded, err := store.GetSlot(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Mock", loaded.Name)

	require.NoError(t, store.DeleteSlot(ctx, "m1"))
	_, err = store.GetSlot(ctx, "m1")
	assert.Error(t, err)
}
