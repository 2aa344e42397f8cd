// Package theme maps the display elements of a listing row onto colors.
// A Palette must cover the whole Elem enumeration; Validate enforces
// that at construction and test time so a gap can never surface while
// rendering.
package theme

import "github.com/gersbach/lsg/internal/gitstatus"

// Elem identifies one colorable display element of a listing row. The
// enumeration is closed: AllElems returns every value, and palettes are
// checked against it for completeness.
type Elem int

const (
	// Node kinds. The exec/setuid file variants and the setuid dir
	// variant carry their own entries because they colorize differently.
	ElemFile Elem = iota
	ElemFileExec
	ElemFileSetuid
	ElemFileExecSetuid
	ElemDir
	ElemDirSetuid
	ElemSymlink
	ElemBrokenSymlink
	ElemPipe
	ElemBlockDevice
	ElemCharDevice
	ElemSocket
	ElemSpecial

	// Permission bits.
	ElemRead
	ElemWrite
	ElemExec
	ElemExecSticky
	ElemNoAccess

	// Modification age buckets.
	ElemHourOld
	ElemDayOld
	ElemOlder

	// Owner columns.
	ElemUser
	ElemGroup

	// Size buckets.
	ElemNonFile
	ElemFileSmall
	ElemFileMedium
	ElemFileLarge

	// Inode and hard-link counts.
	ElemINodeValid
	ElemINodeInvalid
	ElemLinksValid
	ElemLinksInvalid

	ElemTreeEdge

	// Git statuses occupy the tail of the range, one per StatusKind,
	// addressed through GitElem. elemGitBase must stay last.
	elemGitBase
)

// GitElem returns the element for one git status kind.
func GitElem(k gitstatus.StatusKind) Elem {
	return elemGitBase + Elem(k)
}

// AllElems returns the complete element enumeration, including one
// entry per git status kind. Completeness checks iterate this.
func AllElems() []Elem {
	elems := make([]Elem, 0, int(elemGitBase)+len(gitstatus.Kinds()))
	for e := Elem(0); e < elemGitBase; e++ {
		elems = append(elems, e)
	}
	for _, k := range gitstatus.Kinds() {
		elems = append(elems, GitElem(k))
	}
	return elems
}
