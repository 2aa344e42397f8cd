package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gersbach/lsg/internal/gitstatus"
)

// Palette assigns a color to every display element. A palette missing
// an element is a construction defect, not a runtime condition:
// NewPalette builds total maps, and Validate is asserted in tests so a
// gap can never be hit while rendering.
type Palette map[Elem]lipgloss.Color

// NewPalette derives the element colors from a theme. Every element of
// the enumeration, including one per git status kind, is assigned here.
func NewPalette(th *Theme) Palette {
	p := Palette{
		ElemFile:           th.TextFg,
		ElemFileExec:       th.SuccessFg,
		ElemFileSetuid:     th.ErrorFg,
		ElemFileExecSetuid: th.ErrorFg,
		ElemDir:            th.Accent,
		ElemDirSetuid:      th.Accent,
		ElemSymlink:        th.Cyan,
		ElemBrokenSymlink:  th.ErrorFg,
		ElemPipe:           th.Cyan,
		ElemBlockDevice:    th.Yellow,
		ElemCharDevice:     th.Pink,
		ElemSocket:         th.Cyan,
		ElemSpecial:        th.Cyan,

		ElemRead:       th.SuccessFg,
		ElemWrite:      th.WarnFg,
		ElemExec:       th.ErrorFg,
		ElemExecSticky: th.Pink,
		ElemNoAccess:   th.MutedFg,

		ElemHourOld: th.SuccessFg,
		ElemDayOld:  th.Cyan,
		ElemOlder:   th.MutedFg,

		ElemUser:  th.Yellow,
		ElemGroup: th.MutedFg,

		ElemNonFile:    th.MutedFg,
		ElemFileSmall:  th.Yellow,
		ElemFileMedium: th.WarnFg,
		ElemFileLarge:  th.ErrorFg,

		ElemINodeValid:   th.Pink,
		ElemINodeInvalid: th.MutedFg,
		ElemLinksValid:   th.Pink,
		ElemLinksInvalid: th.MutedFg,

		ElemTreeEdge: th.Border,
	}

	git := map[gitstatus.StatusKind]lipgloss.Color{
		gitstatus.Default:      th.TextFg,
		gitstatus.Unmodified:   th.TextFg,
		gitstatus.Ignored:      th.MutedFg,
		gitstatus.NewInIndex:   th.SuccessFg,
		gitstatus.NewInWorkdir: th.TextFg,
		gitstatus.Typechange:   th.WarnFg,
		gitstatus.Deleted:      th.ErrorFg,
		gitstatus.Renamed:      th.WarnFg,
		gitstatus.Modified:     th.Accent,
		gitstatus.Conflicted:   th.ErrorFg,
	}
	for kind, color := range git {
		p[GitElem(kind)] = color
	}

	return p
}

// Color resolves the color for one element. The palette is total, so a
// miss only happens on a hand-built map that skipped Validate; the zero
// color (no styling) keeps rendering alive even then.
func (p Palette) Color(e Elem) lipgloss.Color {
	return p[e]
}

// Validate checks the palette against the full element enumeration.
func (p Palette) Validate() error {
	for _, e := range AllElems() {
		if _, ok := p[e]; !ok {
			return fmt.Errorf("palette is missing element %d", e)
		}
	}
	return nil
}
