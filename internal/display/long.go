package display

import (
	"time"

	"github.com/muesli/reflow/ansi"

	"github.com/gersbach/lsg/internal/meta"
)

// renderLong produces one row per entry: permissions, owner, group,
// size, date, optional git cell, name. Column widths are computed over
// the whole listing first so every row lines up.
func (l *Lister) renderLong(metas []*meta.Meta, now time.Time) string {
	type longRow struct {
		perms, owner, group, size, date, git, name string
	}

	showGit := l.showGit()
	rows := make([]longRow, 0, len(metas))
	var ownerW, groupW, sizeW int

	for _, m := range metas {
		row := longRow{
			perms: l.renderer.Permissions(m),
			owner: l.renderer.Owner(m),
			group: l.renderer.Group(m),
			size:  l.renderer.Size(m),
			date:  l.renderer.Date(m, now, l.opts.DateFormat),
			name:  l.renderer.Name(m),
		}
		if showGit {
			row.git = l.renderer.GitStatusCell(l.statusOf(m))
		}
		ownerW = max(ownerW, ansi.PrintableRuneWidth(row.owner))
		groupW = max(groupW, ansi.PrintableRuneWidth(row.group))
		sizeW = max(sizeW, ansi.PrintableRuneWidth(row.size))
		rows = append(rows, row)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		line := row.perms +
			" " + pad(row.owner, ownerW) +
			" " + pad(row.group, groupW) +
			" " + padLeft(row.size, sizeW) +
			" " + row.date
		if showGit {
			line += " " + row.git
		}
		line += " " + row.name
		out = append(out, line)
	}
	return joinRows(out)
}
