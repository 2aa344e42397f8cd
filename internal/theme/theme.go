package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named set of terminal colors the palette is derived from.
// Every listing element resolves to one of these fields, so a Theme is
// total over the Elem enumeration by construction.
type Theme struct {
	Accent    lipgloss.Color // directories, primary highlight
	Border    lipgloss.Color // tree edges, separators
	MutedFg   lipgloss.Color // ignored files, older timestamps, n/a cells
	TextFg    lipgloss.Color // plain files, unmodified status
	SuccessFg lipgloss.Color // read bit, staged additions, fresh mtimes
	WarnFg    lipgloss.Color // write bit, renames, medium sizes
	ErrorFg   lipgloss.Color // deletions, conflicts, broken links
	Cyan      lipgloss.Color // symlinks, pipes, sockets
	Pink      lipgloss.Color // inodes, link counts, char devices
	Yellow    lipgloss.Color // small sizes, user column
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	SolarizedDarkName   = "solarized-dark"
	MonokaiName         = "monokai"
	CatppuccinMochaName = "catppuccin-mocha"
	CleanLightName      = "clean-light"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"), // Purple
		Border:    lipgloss.Color("#6272A4"), // Comment
		MutedFg:   lipgloss.Color("#6272A4"),
		TextFg:    lipgloss.Color("#F8F8F2"), // Foreground
		SuccessFg: lipgloss.Color("#50FA7B"), // Green
		WarnFg:    lipgloss.Color("#FFB86C"), // Orange
		ErrorFg:   lipgloss.Color("#FF5555"), // Red
		Cyan:      lipgloss.Color("#8BE9FD"),
		Pink:      lipgloss.Color("#FF79C6"),
		Yellow:    lipgloss.Color("#F1FA8C"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#7C3AED"),
		Border:    lipgloss.Color("#D0D7DE"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		SuccessFg: lipgloss.Color("#059669"),
		WarnFg:    lipgloss.Color("#D97706"),
		ErrorFg:   lipgloss.Color("#DC2626"),
		Cyan:      lipgloss.Color("#0891B2"),
		Pink:      lipgloss.Color("#DB2777"),
		Yellow:    lipgloss.Color("#CA8A04"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#88C0D0"),
		Border:    lipgloss.Color("#4C566A"),
		MutedFg:   lipgloss.Color("#81A1C1"),
		TextFg:    lipgloss.Color("#E5E9F0"),
		SuccessFg: lipgloss.Color("#A3BE8C"),
		WarnFg:    lipgloss.Color("#D08770"),
		ErrorFg:   lipgloss.Color("#BF616A"),
		Cyan:      lipgloss.Color("#88C0D0"),
		Pink:      lipgloss.Color("#B48EAD"),
		Yellow:    lipgloss.Color("#EBCB8B"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#83A598"),
		Border:    lipgloss.Color("#504945"),
		MutedFg:   lipgloss.Color("#928374"),
		TextFg:    lipgloss.Color("#EBDBB2"),
		SuccessFg: lipgloss.Color("#B8BB26"),
		WarnFg:    lipgloss.Color("#FE8019"),
		ErrorFg:   lipgloss.Color("#FB4934"),
		Cyan:      lipgloss.Color("#8EC07C"),
		Pink:      lipgloss.Color("#D3869B"),
		Yellow:    lipgloss.Color("#FABD2F"),
	}
}

// SolarizedDark returns the Solarized dark theme.
func SolarizedDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#268BD2"),
		Border:    lipgloss.Color("#586E75"),
		MutedFg:   lipgloss.Color("#586E75"),
		TextFg:    lipgloss.Color("#EEE8D5"),
		SuccessFg: lipgloss.Color("#859900"),
		WarnFg:    lipgloss.Color("#CB4B16"),
		ErrorFg:   lipgloss.Color("#DC322F"),
		Cyan:      lipgloss.Color("#2AA198"),
		Pink:      lipgloss.Color("#D33682"),
		Yellow:    lipgloss.Color("#B58900"),
	}
}

// Monokai returns the Monokai theme.
func Monokai() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#66D9EF"),
		Border:    lipgloss.Color("#75715E"),
		MutedFg:   lipgloss.Color("#75715E"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		SuccessFg: lipgloss.Color("#A6E22E"),
		WarnFg:    lipgloss.Color("#FD971F"),
		ErrorFg:   lipgloss.Color("#F92672"),
		Cyan:      lipgloss.Color("#66D9EF"),
		Pink:      lipgloss.Color("#F92672"),
		Yellow:    lipgloss.Color("#E6DB74"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#B4BEFE"),
		Border:    lipgloss.Color("#45475A"),
		MutedFg:   lipgloss.Color("#6C7086"),
		TextFg:    lipgloss.Color("#CDD6F4"),
		SuccessFg: lipgloss.Color("#A6E3A1"),
		WarnFg:    lipgloss.Color("#FAB387"),
		ErrorFg:   lipgloss.Color("#F38BA8"),
		Cyan:      lipgloss.Color("#89DCEB"),
		Pink:      lipgloss.Color("#F5C2E7"),
		Yellow:    lipgloss.Color("#F9E2AF"),
	}
}

// CleanLight returns a theme for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#0969DA"),
		Border:    lipgloss.Color("#D0D7DE"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		SuccessFg: lipgloss.Color("#1A7F37"),
		WarnFg:    lipgloss.Color("#9A6700"),
		ErrorFg:   lipgloss.Color("#CF222E"),
		Cyan:      lipgloss.Color("#0598BC"),
		Pink:      lipgloss.Color("#BF3989"),
		Yellow:    lipgloss.Color("#D4A72C"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case NordName:
		return Nord()
	case GruvboxDarkName:
		return GruvboxDark()
	case SolarizedDarkName:
		return SolarizedDark()
	case MonokaiName:
		return Monokai()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	case CleanLightName:
		return CleanLight()
	default:
		return Dracula()
	}
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NordName,
		GruvboxDarkName,
		SolarizedDarkName,
		MonokaiName,
		CatppuccinMochaName,
		CleanLightName,
	}
}
