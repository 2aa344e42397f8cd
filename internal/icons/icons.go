// Package icons resolves the glyphs shown next to listing entries:
// per-file-type devicons and the one-character git status symbols.
package icons

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"

	"github.com/gersbach/lsg/internal/gitstatus"
)

// Theme selects the glyph repertoire.
type Theme string

const (
	// ThemeNerd uses Nerd Font glyphs for both file icons and git
	// status symbols. Requires a patched font.
	ThemeNerd Theme = "nerd"
	// ThemeUnicode uses plain letters for git status and no file icons.
	ThemeUnicode Theme = "unicode"
	// ThemeNone renders blank glyphs everywhere, keeping column
	// alignment without any symbols.
	ThemeNone Theme = "none"
)

// Set maps statuses and file names to display glyphs. Git glyph lookups
// may come up empty; the renderer substitutes a blank so cell widths
// stay fixed.
type Set struct {
	theme Theme
}

// NewSet returns the icon set for a theme name; unknown names fall back
// to the Nerd Font set.
func NewSet(theme Theme) *Set {
	switch theme {
	case ThemeUnicode, ThemeNone:
		return &Set{theme: theme}
	default:
		return &Set{theme: ThemeNerd}
	}
}

// nerdGitGlyphs follow the common git-prompt repertoire. Default and
// Unmodified stay absent on purpose: a clean side renders blank.
var nerdGitGlyphs = map[gitstatus.StatusKind]string{
	gitstatus.Ignored:      "", // nf-oct-skip
	gitstatus.NewInIndex:   "", // nf-fa-plus_circle
	gitstatus.NewInWorkdir: "", // nf-fa-question_circle
	gitstatus.Typechange:   "", // nf-seti-config
	gitstatus.Deleted:      "", // nf-fa-minus_circle
	gitstatus.Renamed:      "", // nf-oct-arrow_right
	gitstatus.Modified:     "", // nf-fa-pencil_square_o
	gitstatus.Conflicted:   "", // nf-oct-git_merge
}

var unicodeGitGlyphs = map[gitstatus.StatusKind]string{
	gitstatus.Unmodified:   "-",
	gitstatus.Ignored:      "I",
	gitstatus.NewInIndex:   "N",
	gitstatus.NewInWorkdir: "?",
	gitstatus.Typechange:   "T",
	gitstatus.Deleted:      "D",
	gitstatus.Renamed:      "R",
	gitstatus.Modified:     "M",
	gitstatus.Conflicted:   "C",
}

// GitGlyph returns the symbol for one git status kind, or "" when the
// kind has no symbol in the active theme.
func (s *Set) GitGlyph(k gitstatus.StatusKind) string {
	switch s.theme {
	case ThemeUnicode:
		return unicodeGitGlyphs[k]
	case ThemeNone:
		return ""
	default:
		return nerdGitGlyphs[k]
	}
}

// ForEntry returns the file-type icon for an entry name. Only the Nerd
// Font theme carries file icons.
func (s *Set) ForEntry(name string, isDir bool) string {
	if s.theme != ThemeNerd || name == "" {
		return ""
	}
	style := devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir})
	return style.Icon
}

// iconFileInfo adapts a bare name to fs.FileInfo, which is all the
// devicons lookup needs.
type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }
