package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gersbach/lsg/internal/gitstatus"
)

func TestPaletteIsTotalForEveryTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			p := NewPalette(GetTheme(name))
			assert.NoError(t, p.Validate())
		})
	}
}

func TestPaletteCoversEveryStatusKind(t *testing.T) {
	p := NewPalette(GetTheme("dracula"))
	for _, k := range gitstatus.Kinds() {
		_, ok := p[GitElem(k)]
		assert.True(t, ok, "no color for status kind %s", k)
	}
}

func TestValidateRejectsGaps(t *testing.T) {
	p := Palette{ElemFile: lipgloss.Color("#FFFFFF")}
	require.Error(t, p.Validate())
}

func TestColorMissReturnsZero(t *testing.T) {
	p := Palette{}
	assert.Equal(t, lipgloss.Color(""), p.Color(ElemDir))
}

func TestGetThemeDefaultsToDracula(t *testing.T) {
	assert.Equal(t, GetTheme("dracula"), GetTheme("no-such-theme"))
	assert.Equal(t, GetTheme("dracula"), GetTheme(""))
}

func TestThemesDistinguishChangedStates(t *testing.T) {
	// Modified and deleted rows must stand apart from clean ones in
	// every theme, or the status column says nothing.
	for _, name := range AvailableThemes() {
		p := NewPalette(GetTheme(name))
		clean := p.Color(GitElem(gitstatus.Unmodified))
		assert.NotEqual(t, clean, p.Color(GitElem(gitstatus.Modified)), "theme %s", name)
		assert.NotEqual(t, clean, p.Color(GitElem(gitstatus.Deleted)), "theme %s", name)
	}
}
