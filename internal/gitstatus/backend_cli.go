package gitstatus

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gersbach/lsg/internal/log"
)

// CLIBackend shells out to the git binary. It is the default backend:
// it matches whatever git version the user runs and, unlike the native
// backend, reports ignored files.
type CLIBackend struct{}

// Name implements Backend.
func (b *CLIBackend) Name() string { return BackendCLI }

// Snapshot implements Backend using `git rev-parse --show-toplevel` for
// discovery and `git status --porcelain -z --ignored=matching` for
// enumeration.
func (b *CLIBackend) Snapshot(ctx context.Context, dir string) (string, []PathStatus, error) {
	root, err := b.runGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		// Outside a work tree and inside a bare repository both exit
		// non-zero here; both degrade to an empty cache.
		return "", nil, fmt.Errorf("%w: %s", ErrNoRepository, dir)
	}
	root = strings.TrimSpace(root)

	out, err := b.runGit(ctx, root, "status", "--porcelain", "-z", "--ignored=matching", "--untracked-files=normal")
	if err != nil {
		return root, nil, fmt.Errorf("git status in %s: %w", root, err)
	}

	return root, parsePorcelain(out), nil
}

func (b *CLIBackend) runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			log.Printf("git %s failed in %s: %s", strings.Join(args, " "), dir, stderr)
			if stderr != "" {
				return "", fmt.Errorf("git %s: %s", args[0], stderr)
			}
		}
		return "", err
	}
	return string(out), nil
}

// parsePorcelain decodes NUL-separated porcelain v1 output. Each record
// is "XY path"; rename and copy records carry the original path as an
// extra NUL-separated token, which is skipped.
func parsePorcelain(out string) []PathStatus {
	tokens := strings.Split(out, "\x00")
	entries := make([]PathStatus, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		record := tokens[i]
		if len(record) < 4 || record[2] != ' ' {
			continue
		}
		x, y := record[0], record[1]
		path := record[3:]

		if x == 'R' || x == 'C' || y == 'R' || y == 'C' {
			i++ // the rename/copy source follows as its own token
		}

		raw := rawFromXY(x, y)
		if raw == 0 {
			continue
		}
		entries = append(entries, PathStatus{Path: path, Raw: raw})
	}

	return entries
}

// rawFromXY maps a porcelain XY code pair onto raw status bits. X is
// the index side, Y the working tree, except for the special pairs
// "??" (untracked), "!!" (ignored) and the unmerged combinations.
func rawFromXY(x, y byte) RawStatus {
	switch {
	case x == '?' && y == '?':
		return RawWorktreeNew
	case x == '!' && y == '!':
		return RawIgnored
	case x == 'U' || y == 'U', x == 'D' && y == 'D', x == 'A' && y == 'A':
		return RawConflicted
	}

	var raw RawStatus
	switch x {
	case 'A':
		raw |= RawIndexNew
	case 'D':
		raw |= RawIndexDeleted
	case 'M':
		raw |= RawIndexModified
	case 'R', 'C':
		raw |= RawIndexRenamed
	case 'T':
		raw |= RawIndexTypechange
	}
	switch y {
	case 'A':
		raw |= RawWorktreeNew
	case 'D':
		raw |= RawWorktreeDeleted
	case 'M':
		raw |= RawWorktreeModified
	case 'R':
		raw |= RawWorktreeRenamed
	case 'T':
		raw |= RawWorktreeTypechange
	}
	return raw
}
