package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "k", []byte(`[1,2,3]`)))
	raw, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[1,2,3]`), raw)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte(`original`)
	require.NoError(t, store.Save(ctx, "k", data))
	data[0] = 'X'

	raw, _, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`original`), raw)
}

func TestMemoryStoreLatencyRespectsContext(t *testing.T) {
	store := NewMemoryStoreWithLatency(time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := store.Load(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoadListAbsentCollection(t *testing.T) {
	ctx := context.Background()
	list, err := LoadList[testItem](ctx, NewMemoryStore(), "users")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestLoadListCorruptCollectionReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "users", []byte(`{not json`)))

	list, err := LoadList[testItem](ctx, store, "users")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaveListLoadListRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	items := []testItem{{ID: "a", Name: "Apple"}, {ID: "b", Name: "Banana"}}

	require.NoError(t, SaveList(ctx, store, "items", items))
	loaded, err := LoadList[testItem](ctx, store, "items")
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestLoadRecordAbsentAndCorrupt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := LoadRecord[testItem](ctx, store, "rec")
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, store.Save(ctx, "rec", []byte(`garbage`)))
	rec, err = LoadRecord[testItem](ctx, store, "rec")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, SaveRecord(ctx, store, "rec", testItem{ID: "x", Name: "X"}))
	rec, err := LoadRecord[testItem](ctx, store, "rec")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "X", rec.Name)
}
