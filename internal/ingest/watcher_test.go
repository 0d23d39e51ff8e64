package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no roots")
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.bin"), []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	require.NoError(t, err)

	select {
	case p := <-events:
		assert.Equal(t, filepath.Join(dir, "a.pdf"), p)
	case <-time.After(2 * time.Second):
		t.Fatal("no event from initial scan")
	}
}

func TestStartWatcherDebouncesWriteBursts(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 250 * time.Millisecond,
	})
	require.NoError(t, err)

	path := filepath.Join(dir, "burst.pdf")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", i+1)), 0o644))
	}

	select {
	case p := <-events:
		assert.Equal(t, path, p)
	case <-time.After(3 * time.Second):
		t.Fatal("no event after debounce window")
	}

	// the burst coalesces into a single emission
	select {
	case p := <-events:
		t.Fatalf("unexpected second event %q", p)
	case <-time.After(500 * time.Millisecond):
	}
}
