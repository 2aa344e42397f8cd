package gitstatus

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gersbach/lsg/internal/log"
)

type cacheEntry struct {
	path string // canonical absolute path
	raw  RawStatus
}

// Cache holds the status of every touched path in one repository. It is
// built once, never mutated afterwards, and therefore safe to query
// from concurrent readers. Queries over a directory fold the statuses
// of everything stored beneath it.
//
// Lookups are a linear scan over the stored list. The list is bounded
// by the number of changed paths in the repository, not by the number
// of listed files, so no index structure is kept.
type Cache struct {
	entries []cacheEntry
	root    string
}

// New builds the status cache for the repository enclosing dir using
// the given backend. Every failure mode is soft: outside a repository,
// bare repositories and backend errors all produce an empty cache, so
// the listing itself always proceeds.
func New(ctx context.Context, dir string, backend Backend) *Cache {
	start := canonical(dir)

	root, raw, err := backend.Snapshot(ctx, start)
	if err != nil {
		if errors.Is(err, ErrNoRepository) {
			log.Printf("no repository at %s, listing without git status", start)
		} else {
			log.Printf("git status via %s backend failed: %v", backend.Name(), err)
		}
		if root == "" {
			return &Cache{}
		}
		// Partial failure: discovery worked, enumeration did not.
		return &Cache{root: canonical(root)}
	}

	root = canonical(root)
	entries := make([]cacheEntry, 0, len(raw))
	for _, ps := range raw {
		abs := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(ps.Path, "/")))
		entries = append(entries, cacheEntry{path: abs, raw: ps.Raw})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })

	log.Printf("git cache for %s: %d touched paths", root, len(entries))
	return &Cache{entries: entries, root: root}
}

// Empty returns a cache with no repository behind it. Every query
// yields the default status.
func Empty() *Cache {
	return &Cache{}
}

// Root returns the working-tree root the cache was built from, or ""
// when the cache is empty.
func (c *Cache) Root() string {
	return c.root
}

// InRepository reports whether a repository was discovered at build
// time. Listings outside a repository usually hide the status column.
func (c *Cache) InRepository() bool {
	return c.root != ""
}

// Get resolves the status of one path. Files match exactly; for
// directories the statuses of all stored paths lexically contained in
// the directory are combined, so the most severe change anywhere below
// shows on the directory row. A miss yields {Default, Default}.
func (c *Cache) Get(path string, isDir bool) EntryStatus {
	if len(c.entries) == 0 {
		return EntryStatus{}
	}
	target := canonical(path)

	if !isDir {
		for _, e := range c.entries {
			if e.path == target {
				return FromRaw(e.raw)
			}
		}
		return EntryStatus{}
	}

	prefix := target + string(filepath.Separator)
	var agg EntryStatus
	found := false
	for _, e := range c.entries {
		if e.path == target || strings.HasPrefix(e.path, prefix) {
			agg = agg.Combine(FromRaw(e.raw))
			found = true
		}
	}
	if !found {
		return EntryStatus{}
	}
	return agg
}

// canonical resolves a path to a symlink-free absolute form so that
// containment checks are plain string prefixes. The final component is
// kept as-is: a listed symlink must match the status of the link
// itself, not of its target.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	dir, base := filepath.Split(filepath.Clean(abs))
	resolved, err := filepath.EvalSymlinks(filepath.Clean(dir))
	if err != nil {
		return filepath.Clean(abs)
	}
	if base == "" {
		return resolved
	}
	return filepath.Join(resolved, base)
}
