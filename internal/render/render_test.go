package render

import (
	"io/fs"
	"regexp"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gersbach/lsg/internal/gitstatus"
	"github.com/gersbach/lsg/internal/icons"
	"github.com/gersbach/lsg/internal/meta"
	"github.com/gersbach/lsg/internal/theme"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func newTestRenderer(t *testing.T, iconTheme icons.Theme) *Renderer {
	t.Helper()
	r, err := New(theme.NewPalette(theme.GetTheme("dracula")), icons.NewSet(iconTheme), nil)
	require.NoError(t, err)
	return r
}

func TestNewRejectsIncompletePalette(t *testing.T) {
	_, err := New(theme.Palette{theme.ElemFile: lipgloss.Color("#FFFFFF")}, icons.NewSet(icons.ThemeNone), nil)
	assert.Error(t, err)
}

func TestGitStatusCellIsDeterministic(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeUnicode)
	es := gitstatus.EntryStatus{Index: gitstatus.NewInIndex, Workdir: gitstatus.Modified}
	assert.Equal(t, r.GitStatusCell(es), r.GitStatusCell(es))
}

func TestGitStatusCellWidthIsConstant(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeUnicode)

	want := ansi.PrintableRuneWidth(r.GitStatusCell(gitstatus.EntryStatus{}))
	for _, index := range gitstatus.Kinds() {
		for _, workdir := range gitstatus.Kinds() {
			cell := r.GitStatusCell(gitstatus.EntryStatus{Index: index, Workdir: workdir})
			assert.Equal(t, want, ansi.PrintableRuneWidth(cell), "%s/%s", index, workdir)
		}
	}
}

func TestGitStatusCellContent(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeUnicode)

	es := gitstatus.EntryStatus{Index: gitstatus.NewInIndex, Workdir: gitstatus.Modified}
	assert.Equal(t, "N M", plain(r.GitStatusCell(es)))

	// Clean sides render blank, keeping alignment.
	assert.Equal(t, "   ", plain(r.GitStatusCell(gitstatus.EntryStatus{})))
	assert.Equal(t, "  M", plain(r.GitStatusCell(gitstatus.EntryStatus{
		Index:   gitstatus.Default,
		Workdir: gitstatus.Modified,
	})))
}

func TestNameSymlink(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeNone)
	m := &meta.Meta{
		Name:       "link",
		Path:       "/tmp/link",
		Type:       meta.TypeSymlink,
		LinkTarget: "target.txt",
		LinkOK:     true,
		Mode:       fs.ModeSymlink | 0o777,
	}
	assert.Equal(t, "link ⇒ target.txt", plain(r.Name(m)))
}

func TestNameOverrideWins(t *testing.T) {
	var o theme.Overrides
	o.AddGlob("*.md", "#FFB86C")
	r, err := New(theme.NewPalette(theme.GetTheme("dracula")), icons.NewSet(icons.ThemeNone), &o)
	require.NoError(t, err)

	m := &meta.Meta{Name: "README.md", Path: "/srv/README.md", Type: meta.TypeFile}
	assert.Equal(t, "README.md", plain(r.Name(m)))
}

func TestPermissions(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeNone)

	tests := []struct {
		name string
		m    meta.Meta
		want string
	}{
		{"regular", meta.Meta{Type: meta.TypeFile, Mode: 0o644}, ".rw-r--r--"},
		{"executable dir", meta.Meta{Type: meta.TypeDir, Mode: fs.ModeDir | 0o755}, "drwxr-xr-x"},
		{"setuid exec", meta.Meta{Type: meta.TypeFile, Mode: fs.ModeSetuid | 0o755}, ".rwsr-xr-x"},
		{"sticky dir", meta.Meta{Type: meta.TypeDir, Mode: fs.ModeDir | fs.ModeSticky | 0o777}, "drwxrwxrwt"},
		{"sticky without exec", meta.Meta{Type: meta.TypeDir, Mode: fs.ModeDir | fs.ModeSticky | 0o776}, "drwxrwxrwT"},
		{"no access", meta.Meta{Type: meta.TypeFile, Mode: 0}, ".---------"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plain(r.Permissions(&tt.m)))
		})
	}
}

func TestSize(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeNone)

	tests := []struct {
		name string
		m    meta.Meta
		want string
	}{
		{"bytes", meta.Meta{Type: meta.TypeFile, Size: 812}, "812 B"},
		{"kib", meta.Meta{Type: meta.TypeFile, Size: 4 * 1024}, "4.0 KiB"},
		{"mib", meta.Meta{Type: meta.TypeFile, Size: 5 * 1024 * 1024}, "5.0 MiB"},
		{"gib", meta.Meta{Type: meta.TypeFile, Size: 3 * 1024 * 1024 * 1024}, "3.0 GiB"},
		{"directory", meta.Meta{Type: meta.TypeDir}, "-"},
		{"socket", meta.Meta{Type: meta.TypeSocket}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plain(r.Size(&tt.m)))
		})
	}
}

func TestDate(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeNone)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	m := &meta.Meta{ModTime: time.Date(2024, 6, 15, 11, 30, 0, 0, time.UTC)}
	assert.Equal(t, "Jun 15 11:30", plain(r.Date(m, now, "")))
	assert.Equal(t, "2024-06-15", plain(r.Date(m, now, "2006-01-02")))
}

func TestOwnerGroupFallback(t *testing.T) {
	r := newTestRenderer(t, icons.ThemeNone)

	m := &meta.Meta{Owner: "root", Group: "wheel"}
	assert.Equal(t, "root", plain(r.Owner(m)))
	assert.Equal(t, "wheel", plain(r.Group(m)))

	empty := &meta.Meta{}
	assert.Equal(t, "-", plain(r.Owner(empty)))
	assert.Equal(t, "-", plain(r.Group(empty)))
}

func TestElemForEntry(t *testing.T) {
	tests := []struct {
		name string
		m    meta.Meta
		want theme.Elem
	}{
		{"plain file", meta.Meta{Type: meta.TypeFile, Mode: 0o644}, theme.ElemFile},
		{"executable", meta.Meta{Type: meta.TypeFile, Mode: 0o755}, theme.ElemFileExec},
		{"setuid", meta.Meta{Type: meta.TypeFile, Mode: fs.ModeSetuid | 0o644}, theme.ElemFileSetuid},
		{"setuid exec", meta.Meta{Type: meta.TypeFile, Mode: fs.ModeSetuid | 0o755}, theme.ElemFileExecSetuid},
		{"dir", meta.Meta{Type: meta.TypeDir, Mode: fs.ModeDir | 0o755}, theme.ElemDir},
		{"symlink", meta.Meta{Type: meta.TypeSymlink, LinkOK: true}, theme.ElemSymlink},
		{"broken symlink", meta.Meta{Type: meta.TypeSymlink}, theme.ElemBrokenSymlink},
		{"socket", meta.Meta{Type: meta.TypeSocket}, theme.ElemSocket},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, elemForEntry(&tt.m))
		})
	}
}
