package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldRefreshDebounce(t *testing.T) {
	w := newWatchService()
	now := time.Now()

	assert.True(t, w.ShouldRefresh(now))
	assert.False(t, w.ShouldRefresh(now.Add(100*time.Millisecond)))
	assert.False(t, w.ShouldRefresh(now.Add(watchDebounce-time.Millisecond)))
	assert.True(t, w.ShouldRefresh(now.Add(watchDebounce)))
}

func TestShouldRefreshResetsWindow(t *testing.T) {
	w := newWatchService()
	now := time.Now()

	require.True(t, w.ShouldRefresh(now))
	require.True(t, w.ShouldRefresh(now.Add(watchDebounce)))
	// The second accepted refresh restarts the window.
	assert.False(t, w.ShouldRefresh(now.Add(watchDebounce+100*time.Millisecond)))
}

func TestWatchSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	w := newWatchService()
	require.NoError(t, w.Start(dir, ""))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "touched"), []byte("x"), 0o644))

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("no event after write")
	}
}

func TestWatchCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	w := newWatchService()
	require.NoError(t, w.Start(dir, ""))
	defer w.Stop()

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "touched"), []byte{byte(i)}, 0o644))
	}

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("no event after writes")
	}

	// The channel holds at most one pending signal, so a burst never
	// queues a backlog of refreshes.
	time.Sleep(200 * time.Millisecond)
	pending := 0
	for {
		select {
		case <-w.Events():
			pending++
			continue
		default:
		}
		break
	}
	assert.LessOrEqual(t, pending, 1)
}

func TestStartTwiceIsNoop(t *testing.T) {
	dir := t.TempDir()
	w := newWatchService()
	require.NoError(t, w.Start(dir, ""))
	defer w.Stop()

	assert.NoError(t, w.Start(dir, ""))
}

func TestStopWithoutStart(t *testing.T) {
	w := newWatchService()
	w.Stop() // must not panic
}

func TestStartSkipsMissingRepoDirs(t *testing.T) {
	dir := t.TempDir()
	w := newWatchService()
	// repoRoot without a .git directory: only dir itself gets watched.
	require.NoError(t, w.Start(dir, filepath.Join(dir, "nope")))
	defer w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Len(t, w.paths, 1)
}
