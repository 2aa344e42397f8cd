package display

import (
	"strings"

	"github.com/gersbach/lsg/internal/meta"
)

const (
	edgeMid  = "├── "
	edgeLast = "└── "
	edgeCont = "│   "
	edgeGap  = "    "
)

// renderTree draws the directory recursively. Directory rows show the
// subtree aggregate of every touched path beneath them, so one modified
// file deep in the tree marks every ancestor on the way up.
func (l *Lister) renderTree(dir string) (string, error) {
	root, err := meta.Gather(dir)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(l.treeLabel(root))
	sb.WriteString("\n")
	if err := l.renderSubtree(&sb, dir, ""); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (l *Lister) renderSubtree(sb *strings.Builder, dir, prefix string) error {
	metas, err := meta.List(dir, l.opts.All)
	if err != nil {
		// An unreadable subdirectory should not abort the whole tree.
		return nil
	}
	meta.Sort(metas, l.opts.Sort, l.opts.Reverse)

	for i, m := range metas {
		edge, childPrefix := edgeMid, prefix+edgeCont
		if i == len(metas)-1 {
			edge, childPrefix = edgeLast, prefix+edgeGap
		}

		sb.WriteString(l.renderer.TreeEdge(prefix + edge))
		sb.WriteString(l.treeLabel(m))
		sb.WriteString("\n")

		if m.IsDir() {
			if err := l.renderSubtree(sb, m.Path, childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Lister) treeLabel(m *meta.Meta) string {
	label := l.renderer.Name(m)
	if l.showGit() {
		label = l.renderer.GitStatusCell(l.statusOf(m)) + " " + label
	}
	return label
}
