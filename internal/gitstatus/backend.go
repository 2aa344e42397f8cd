package gitstatus

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoRepository is returned by a Backend when the starting directory
// is not inside any git working tree. The cache treats it as "list
// without status", never as a failure.
var ErrNoRepository = errors.New("not inside a git work tree")

// PathStatus is one touched path as reported by a backend, relative to
// the working-tree root.
type PathStatus struct {
	Path string
	Raw  RawStatus
}

// Backend discovers the repository containing a directory and
// enumerates every path git considers touched (new, modified, deleted,
// renamed, type-changed, conflicted or ignored). Clean tracked files
// are implicitly unmodified by absence.
type Backend interface {
	// Snapshot returns the working-tree root and the touched paths for
	// the repository enclosing dir. It returns ErrNoRepository when dir
	// is outside any work tree (including bare repositories).
	Snapshot(ctx context.Context, dir string) (root string, entries []PathStatus, err error)

	// Name identifies the backend in logs and errors.
	Name() string
}

// Backend names accepted in configuration.
const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

// NewBackend returns the backend with the given name, or the default
// when name is empty. The default is the git binary when one is on
// PATH, the pure-Go backend otherwise.
func NewBackend(name string) (Backend, error) {
	switch name {
	case BackendCLI:
		return &CLIBackend{}, nil
	case BackendNative:
		return &NativeBackend{}, nil
	case "":
		if _, err := exec.LookPath("git"); err != nil {
			return &NativeBackend{}, nil
		}
		return &CLIBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown git backend %q (want %q or %q)", name, BackendCLI, BackendNative)
	}
}
