package gitstatus

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/gersbach/lsg/internal/log"
)

// NativeBackend reads repository state through go-git, so it works on
// machines without a git binary. Known limitation: go-git does not
// enumerate ignored files, so Ignored never shows up through this
// backend, and typechange detection is unsupported.
type NativeBackend struct{}

// Name implements Backend.
func (b *NativeBackend) Name() string { return BackendNative }

// Snapshot implements Backend.
func (b *NativeBackend) Snapshot(ctx context.Context, dir string) (string, []PathStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil, fmt.Errorf("%w: %s", ErrNoRepository, dir)
		}
		return "", nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", nil, fmt.Errorf("%w: %s", ErrNoRepository, dir)
		}
		return "", nil, fmt.Errorf("resolve work tree: %w", err)
	}
	root := wt.Filesystem.Root()

	status, err := wt.Status()
	if err != nil {
		log.Printf("go-git status in %s: %v", root, err)
		return root, nil, fmt.Errorf("enumerate status in %s: %w", root, err)
	}

	entries := make([]PathStatus, 0, len(status))
	for rel, fileStatus := range status {
		raw := rawFromCodes(fileStatus.Staging, fileStatus.Worktree)
		if raw == 0 {
			continue
		}
		entries = append(entries, PathStatus{Path: rel, Raw: raw})
	}
	return root, entries, nil
}

func rawFromCodes(staging, worktree git.StatusCode) RawStatus {
	if staging == git.UpdatedButUnmerged || worktree == git.UpdatedButUnmerged {
		return RawConflicted
	}

	var raw RawStatus
	switch staging {
	case git.Added, git.Copied:
		raw |= RawIndexNew
	case git.Deleted:
		raw |= RawIndexDeleted
	case git.Modified:
		raw |= RawIndexModified
	case git.Renamed:
		raw |= RawIndexRenamed
	}
	switch worktree {
	case git.Untracked:
		raw |= RawWorktreeNew
	case git.Deleted:
		raw |= RawWorktreeDeleted
	case git.Modified:
		raw |= RawWorktreeModified
	case git.Renamed:
		raw |= RawWorktreeRenamed
	}
	return raw
}
