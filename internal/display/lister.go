// Package display lays out rendered entries as grid, one-per-line,
// long-format or tree output. It is the only caller of the status
// cache: files query an exact match, directories the subtree aggregate.
package display

import (
	"fmt"
	"time"

	"github.com/gersbach/lsg/internal/gitstatus"
	"github.com/gersbach/lsg/internal/meta"
	"github.com/gersbach/lsg/internal/render"
)

// Layout names.
const (
	LayoutGrid    = "grid"
	LayoutOneline = "oneline"
	LayoutLong    = "long"
	LayoutTree    = "tree"
)

// Options configure one listing run.
type Options struct {
	Layout     string
	All        bool
	Git        bool // include the git status cell
	Sort       meta.SortKey
	Reverse    bool
	DateFormat string
	Width      int // terminal width for the grid layout
}

// Lister drives one listing: it owns the renderer and the status cache
// built for this invocation. The cache is read-only here; Lister never
// mutates shared state and may be used from concurrent goroutines.
type Lister struct {
	renderer *render.Renderer
	cache    *gitstatus.Cache
	opts     Options
}

// NewLister wires a renderer and a prebuilt status cache to options.
func NewLister(r *render.Renderer, cache *gitstatus.Cache, opts Options) *Lister {
	if cache == nil {
		cache = gitstatus.Empty()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	return &Lister{renderer: r, cache: cache, opts: opts}
}

// showGit reports whether rows carry the status cell: requested and a
// repository was actually found (outside one the column is noise).
func (l *Lister) showGit() bool {
	return l.opts.Git && l.cache.InRepository()
}

func (l *Lister) statusOf(m *meta.Meta) gitstatus.EntryStatus {
	return l.cache.Get(m.Path, m.IsDir())
}

// RenderDir lists one directory with the configured layout.
func (l *Lister) RenderDir(dir string) (string, error) {
	metas, err := meta.List(dir, l.opts.All)
	if err != nil {
		return "", fmt.Errorf("list %s: %w", dir, err)
	}
	meta.Sort(metas, l.opts.Sort, l.opts.Reverse)

	switch l.opts.Layout {
	case LayoutLong:
		return l.renderLong(metas, time.Now()), nil
	case LayoutTree:
		return l.renderTree(dir)
	case LayoutOneline:
		return l.renderOneline(metas), nil
	default:
		return l.renderGrid(metas), nil
	}
}

func (l *Lister) renderOneline(metas []*meta.Meta) string {
	rows := make([]string, 0, len(metas))
	for _, m := range metas {
		row := l.renderer.Name(m)
		if l.showGit() {
			row = l.renderer.GitStatusCell(l.statusOf(m)) + " " + row
		}
		rows = append(rows, row)
	}
	return joinRows(rows)
}
