package display

import (
	"strings"

	"github.com/muesli/reflow/ansi"

	"github.com/gersbach/lsg/internal/meta"
)

const gridGutter = 2

// renderGrid lays entries out in columns sized to the widest cell,
// filling column by column the way ls does. Cell widths are measured on
// printable runes so color escapes don't skew alignment.
func (l *Lister) renderGrid(metas []*meta.Meta) string {
	if len(metas) == 0 {
		return ""
	}

	cells := make([]string, 0, len(metas))
	widest := 0
	for _, m := range metas {
		cell := l.renderer.Name(m)
		if w := ansi.PrintableRuneWidth(cell); w > widest {
			widest = w
		}
		cells = append(cells, cell)
	}

	cols := (l.opts.Width + gridGutter) / (widest + gridGutter)
	if cols < 1 {
		cols = 1
	}
	if cols > len(cells) {
		cols = len(cells)
	}
	rows := (len(cells) + cols - 1) / cols

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := col*rows + row
			if idx >= len(cells) {
				continue
			}
			cell := cells[idx]
			sb.WriteString(cell)
			if col < cols-1 && idx+rows < len(cells) {
				sb.WriteString(strings.Repeat(" ", widest-ansi.PrintableRuneWidth(cell)+gridGutter))
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func joinRows(rows []string) string {
	return strings.Join(rows, "\n")
}

// pad right-fills a rendered cell to a printable width.
func pad(cell string, width int) string {
	gap := width - ansi.PrintableRuneWidth(cell)
	if gap <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", gap)
}

// padLeft left-fills a rendered cell to a printable width.
func padLeft(cell string, width int) string {
	gap := width - ansi.PrintableRuneWidth(cell)
	if gap <= 0 {
		return cell
	}
	return strings.Repeat(" ", gap) + cell
}
