package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"resume-builder/internal/domain"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftStore(t *testing.T, ttl time.Duration) (*RedisDraftStore, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	return NewRedisDraftStore(client, "test:", ttl), m
}

func TestRedisDraftStore_SetGetDelete(t *testing.T) {
	store, m := newDraftStore(t, time.Hour)
	ctx := context.Background()

	doc := json.RawMessage(`{"personalInfo":{"fullName":"Jane Doe"}}`)
	require.NoError(t, store.Set(ctx, "u1", DraftSavedResume, doc))
	require.True(t, m.Exists("test:draft:u1:savedResume"))

	got, err := store.Get(ctx, "u1", DraftSavedResume)
	require.NoError(t, err)
	require.JSONEq(t, string(doc), string(got))

	_, err = store.Get(ctx, "u2", DraftSavedResume)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Delete(ctx, "u1", DraftSavedResume))
	_, err = store.Get(ctx, "u1", DraftSavedResume)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisDraftStore_TTL(t *testing.T) {
	store, m := newDraftStore(t, 2*time.Second)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "u1", DraftBuilderState, json.RawMessage(`{"step":2}`)))
	assert.Equal(t, 2*time.Second, m.TTL("test:draft:u1:builderState"))

	m.FastForward(3 * time.Second)
	_, err := store.Get(ctx, "u1", DraftBuilderState)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisDraftStore_Rejects(t *testing.T) {
	store, _ := newDraftStore(t, time.Hour)
	ctx := context.Background()

	require.ErrorIs(t, store.Set(ctx, "u1", "theme", json.RawMessage(`{}`)), ErrUnknownDraft)
	require.Error(t, store.Set(ctx, "u1", DraftSavedResume, json.RawMessage(`{not json`)))
	_, err := store.Get(ctx, "u1", "theme")
	require.ErrorIs(t, err, ErrUnknownDraft)
}

func TestRedisDraftStore_Unavailable(t *testing.T) {
	store, m := newDraftStore(t, time.Hour)
	m.Close()

	err := store.Set(context.Background(), "u1", DraftSavedResume, json.RawMessage(`{}`))
	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "save draft", pe.Op)
}
