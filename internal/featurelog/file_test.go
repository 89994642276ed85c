package featurelog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feature_requests.log")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestFileStore_Append(t *testing.T) {
	store, path := newTestFileStore(t)

	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	err := store.Append(context.Background(), Entry{Timestamp: ts, Query: "please add dark mode"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T12:30:00Z: please add dark mode\n", string(data))
}

func TestFileStore_AppendIsAppendOnly(t *testing.T) {
	store, path := newTestFileStore(t)

	ctx := context.Background()
	ts := time.Now().UTC()
	require.NoError(t, store.Append(ctx, Entry{Timestamp: ts, Query: "first"}))
	require.NoError(t, store.Append(ctx, Entry{Timestamp: ts, Query: "second"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestFileStore_ConcurrentAppendsDoNotInterleave(t *testing.T) {
	store, path := newTestFileStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			entry := Entry{
				Timestamp: time.Now().UTC(),
				Query:     fmt.Sprintf("request-%d %s", n, strings.Repeat("x", 200)),
			}
			assert.NoError(t, store.Append(context.Background(), entry))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, writers)
	for _, line := range lines {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T.*: request-\d+ x+$`, line)
	}
}

func TestFileStore_AppendAfterCloseFails(t *testing.T) {
	store, _ := newTestFileStore(t)
	require.NoError(t, store.Close())

	err := store.Append(context.Background(), Entry{Timestamp: time.Now(), Query: "late"})
	assert.Error(t, err)
}
