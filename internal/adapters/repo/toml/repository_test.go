package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func TestJournalLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	journal, err := NewJournal(filepath.Join(t.TempDir(), "state", "events.toml"))
	require.NoError(t, err)

	keys, err := journal.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestJournalAppendPersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.toml")
	journal, err := NewJournal(path, WithClock(fixedNow))
	require.NoError(t, err)

	require.NoError(t, journal.Append(context.Background(), "farcaster:0xabc"))
	require.NoError(t, journal.Append(context.Background(), "0xtx-4-2"))
	require.NoError(t, journal.Append(context.Background(), "farcaster:0xabc"))

	reopened, err := NewJournal(path)
	require.NoError(t, err)
	keys, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"farcaster:0xabc", "0xtx-4-2"}, keys)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "2026-03-01T10:00:00Z")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(journalFileMode), info.Mode().Perm())
}

func TestJournalDropsOldestKeysBeyondLimit(t *testing.T) {
	t.Parallel()

	journal, err := NewJournal(filepath.Join(t.TempDir(), "events.toml"), WithMaxEvents(3))
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		require.NoError(t, journal.Append(context.Background(), fmt.Sprintf("twitter:%d", i)))
	}

	keys, err := journal.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"twitter:3", "twitter:4", "twitter:5"}, keys)
}

func TestJournalConcurrentAppendsKeepEveryKey(t *testing.T) {
	t.Parallel()

	journal, err := NewJournal(filepath.Join(t.TempDir(), "events.toml"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, journal.Append(context.Background(), fmt.Sprintf("farcaster:%d", i)))
		}(i)
	}
	wg.Wait()

	keys, err := journal.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 20)
}

func TestJournalRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 9\n"), 0o600))

	journal, err := NewJournal(path)
	require.NoError(t, err)

	_, err = journal.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported journal schema version 9")
}

func TestJournalRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := NewJournal("  ")
	require.Error(t, err)

	journal, err := NewJournal(filepath.Join(t.TempDir(), "events.toml"))
	require.NoError(t, err)
	require.Error(t, journal.Append(context.Background(), ""))
}

func TestJournalHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	journal, err := NewJournal(filepath.Join(t.TempDir(), "events.toml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, journal.Append(ctx, "farcaster:1"), context.Canceled)
	_, err = journal.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
