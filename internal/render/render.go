// Package render turns entry metadata and git status into colored
// strings. Rendering is pure: the same inputs always produce the same
// bytes, and all mutable state (the status cache) is built before the
// first row is rendered.
package render

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gersbach/lsg/internal/gitstatus"
	"github.com/gersbach/lsg/internal/icons"
	"github.com/gersbach/lsg/internal/meta"
	"github.com/gersbach/lsg/internal/theme"
)

// Renderer composes a palette, an icon set and path-based overrides
// into the strings a layout places on screen.
type Renderer struct {
	palette   theme.Palette
	icons     *icons.Set
	overrides *theme.Overrides
}

// New builds a renderer and checks the palette for completeness, so an
// incomplete color map fails construction instead of a render call.
func New(palette theme.Palette, iconSet *icons.Set, overrides *theme.Overrides) (*Renderer, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = &theme.Overrides{}
	}
	return &Renderer{palette: palette, icons: iconSet, overrides: overrides}, nil
}

func (r *Renderer) paint(text string, e theme.Elem) string {
	return lipgloss.NewStyle().Foreground(r.palette.Color(e)).Render(text)
}

// GitStatusCell renders the two-glyph status pair for one entry: index
// side, one space, workdir side, each colored by its own status. The
// cell renders even for {Default, Default} (blank glyphs) so the column
// keeps its width on every row.
func (r *Renderer) GitStatusCell(es gitstatus.EntryStatus) string {
	return r.gitGlyph(es.Index) + " " + r.gitGlyph(es.Workdir)
}

func (r *Renderer) gitGlyph(k gitstatus.StatusKind) string {
	glyph := r.icons.GitGlyph(k)
	if glyph == "" {
		glyph = " "
	}
	return r.paint(glyph, theme.GitElem(k))
}

// Name renders the icon and name of an entry. A matching path override
// takes the color decision away from the element mapping entirely.
func (r *Renderer) Name(m *meta.Meta) string {
	text := m.Name
	if icon := r.icons.ForEntry(m.Name, m.IsDir()); icon != "" {
		text = icon + " " + text
	}
	if m.Type == meta.TypeSymlink && m.LinkTarget != "" {
		text += " ⇒ " + m.LinkTarget
	}

	if color, ok := r.overrides.ColorFor(m.Path); ok {
		return lipgloss.NewStyle().Foreground(color).Render(text)
	}
	return r.paint(text, elemForEntry(m))
}

func elemForEntry(m *meta.Meta) theme.Elem {
	switch m.Type {
	case meta.TypeDir:
		if m.Mode&fs.ModeSetuid != 0 {
			return theme.ElemDirSetuid
		}
		return theme.ElemDir
	case meta.TypeSymlink:
		if !m.LinkOK {
			return theme.ElemBrokenSymlink
		}
		return theme.ElemSymlink
	case meta.TypePipe:
		return theme.ElemPipe
	case meta.TypeSocket:
		return theme.ElemSocket
	case meta.TypeBlockDevice:
		return theme.ElemBlockDevice
	case meta.TypeCharDevice:
		return theme.ElemCharDevice
	case meta.TypeSpecial:
		return theme.ElemSpecial
	default:
		exec := m.Mode&0o111 != 0
		setuid := m.Mode&fs.ModeSetuid != 0
		switch {
		case exec && setuid:
			return theme.ElemFileExecSetuid
		case setuid:
			return theme.ElemFileSetuid
		case exec:
			return theme.ElemFileExec
		default:
			return theme.ElemFile
		}
	}
}

// Permissions renders the rwx triplets, one colored character per bit.
func (r *Renderer) Permissions(m *meta.Meta) string {
	var sb strings.Builder
	sb.WriteString(r.paint(typeChar(m.Type), theme.ElemNoAccess))

	perm := m.Mode.Perm()
	for shift := 6; shift >= 0; shift -= 3 {
		bits := (perm >> uint(shift)) & 0o7
		sb.WriteString(r.permChar(bits&0o4 != 0, "r", theme.ElemRead))
		sb.WriteString(r.permChar(bits&0o2 != 0, "w", theme.ElemWrite))
		sb.WriteString(r.execChar(m, shift, bits&0o1 != 0))
	}
	return sb.String()
}

func (r *Renderer) permChar(set bool, char string, e theme.Elem) string {
	if !set {
		return r.paint("-", theme.ElemNoAccess)
	}
	return r.paint(char, e)
}

func (r *Renderer) execChar(m *meta.Meta, shift int, set bool) string {
	sticky := shift == 0 && m.Mode&fs.ModeSticky != 0
	setuid := shift == 6 && m.Mode&fs.ModeSetuid != 0

	switch {
	case set && (sticky || setuid):
		char := "s"
		if sticky {
			char = "t"
		}
		return r.paint(char, theme.ElemExecSticky)
	case set:
		return r.paint("x", theme.ElemExec)
	case sticky:
		return r.paint("T", theme.ElemExecSticky)
	default:
		return r.paint("-", theme.ElemNoAccess)
	}
}

func typeChar(t meta.FileType) string {
	switch t {
	case meta.TypeDir:
		return "d"
	case meta.TypeSymlink:
		return "l"
	case meta.TypePipe:
		return "p"
	case meta.TypeSocket:
		return "s"
	case meta.TypeBlockDevice:
		return "b"
	case meta.TypeCharDevice:
		return "c"
	default:
		return "."
	}
}

// Size renders the human-readable size, colored by size bucket.
// Directories and special nodes show a dash.
func (r *Renderer) Size(m *meta.Meta) string {
	if m.Type != meta.TypeFile {
		return r.paint("-", theme.ElemNonFile)
	}
	return r.paint(formatSize(m.Size), sizeElem(m.Size))
}

func sizeElem(size int64) theme.Elem {
	switch {
	case size < meta.SmallSizeLimit:
		return theme.ElemFileSmall
	case size < meta.MediumSizeLimit:
		return theme.ElemFileMedium
	default:
		return theme.ElemFileLarge
	}
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// Date renders the modification time colored by its age relative to
// now. now is a parameter so output stays reproducible under test.
func (r *Renderer) Date(m *meta.Meta, now time.Time, layout string) string {
	if layout == "" {
		layout = "Jan 02 15:04"
	}
	age := now.Sub(m.ModTime)
	e := theme.ElemOlder
	switch {
	case age < meta.HourOldLimit:
		e = theme.ElemHourOld
	case age < meta.DayOldLimit:
		e = theme.ElemDayOld
	}
	return r.paint(m.ModTime.Format(layout), e)
}

// Owner renders the user column.
func (r *Renderer) Owner(m *meta.Meta) string {
	if m.Owner == "" {
		return r.paint("-", theme.ElemNoAccess)
	}
	return r.paint(m.Owner, theme.ElemUser)
}

// Group renders the group column.
func (r *Renderer) Group(m *meta.Meta) string {
	if m.Group == "" {
		return r.paint("-", theme.ElemNoAccess)
	}
	return r.paint(m.Group, theme.ElemGroup)
}

// TreeEdge renders tree-drawing characters in the edge color.
func (r *Renderer) TreeEdge(edge string) string {
	return r.paint(edge, theme.ElemTreeEdge)
}
