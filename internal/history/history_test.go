package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbarden/edict/internal/llm"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestOpenDB_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "history.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := testStore(t)

	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "a", Task: "rules", Model: "llama3.2", Attempts: 1, LatencyMs: 120, Success: true, CreatedAt: base},
		{ID: "b", Task: "tasks", Model: "llama3.2", Attempts: 3, LatencyMs: 900, Success: false, ErrorCode: "RETRY_EXHAUSTED", CreatedAt: base.Add(time.Minute)},
		{ID: "c", Task: "rules", Model: "llama3.2", Attempts: 2, LatencyMs: 400, Success: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, store.Record(e))
	}

	got, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "a", got[2].ID)

	assert.False(t, got[1].Success)
	assert.Equal(t, "RETRY_EXHAUSTED", got[1].ErrorCode)
	assert.Equal(t, 3, got[1].Attempts)
	assert.True(t, got[1].CreatedAt.Equal(base.Add(time.Minute)))
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	store := testStore(t)

	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.Record(Entry{
			ID: id, Task: "rules", Attempts: 1, Success: true,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestStore_RecentEmpty(t *testing.T) {
	store := testStore(t)
	got, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecorder_PersistsCallEvents(t *testing.T) {
	store := testStore(t)
	rec := NewRecorder(store)

	rec.OnCallComplete(llm.CallEvent{
		ConversionID: "conv-1",
		Task:         llm.TaskRules,
		Model:        "llama3.2",
		Attempts:     2,
		LatencyMs:    350,
		Success:      true,
	})

	got, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "conv-1", got[0].ID)
	assert.Equal(t, "rules", got[0].Task)
	assert.Equal(t, 2, got[0].Attempts)
	assert.True(t, got[0].Success)
	assert.False(t, got[0].CreatedAt.IsZero())
}
