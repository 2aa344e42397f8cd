package gitstatus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initNativeRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "tracked.txt"), []byte("one\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("tracked.txt")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return root
}

func TestNativeBackendSnapshot(t *testing.T) {
	root := initNativeRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "tracked.txt"), []byte("two\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "untracked.txt"), []byte("new\n"), 0o644))

	backend := &NativeBackend{}
	gotRoot, entries, err := backend.Snapshot(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, root, gotRoot)

	byPath := map[string]RawStatus{}
	for _, e := range entries {
		byPath[e.Path] = e.Raw
	}
	assert.Equal(t, RawWorktreeModified, byPath["tracked.txt"])
	assert.Equal(t, RawWorktreeNew, byPath["untracked.txt"])
}

func TestNativeBackendDiscoversFromSubdirectory(t *testing.T) {
	root := initNativeRepo(t)

	sub := filepath.Join(root, "nested", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	backend := &NativeBackend{}
	gotRoot, _, err := backend.Snapshot(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, root, gotRoot)
}

func TestNativeBackendOutsideRepository(t *testing.T) {
	backend := &NativeBackend{}
	_, _, err := backend.Snapshot(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestNativeBackendHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	backend := &NativeBackend{}
	_, _, err := backend.Snapshot(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRawFromCodes(t *testing.T) {
	tests := []struct {
		name     string
		staging  git.StatusCode
		worktree git.StatusCode
		want     RawStatus
	}{
		{"untracked", git.Untracked, git.Untracked, RawWorktreeNew},
		{"staged new", git.Added, git.Unmodified, RawIndexNew},
		{"worktree modified", git.Unmodified, git.Modified, RawWorktreeModified},
		{"staged and modified again", git.Modified, git.Modified, RawIndexModified | RawWorktreeModified},
		{"unmerged", git.UpdatedButUnmerged, git.Modified, RawConflicted},
		{"clean", git.Unmodified, git.Unmodified, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rawFromCodes(tt.staging, tt.worktree))
		})
	}
}
