package theme

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Overrides hold path-based color rules from sources outside the theme,
// such as the LS_COLORS environment variable or the config file's
// colors section. When a rule matches a path it wins outright over the
// element color for that row.
type Overrides struct {
	rules []globRule
}

type globRule struct {
	pattern string
	color   lipgloss.Color
}

// AddGlob appends a rule matching the entry's base name, e.g.
// "*.md" -> "#FFB86C". Later rules win over earlier ones.
func (o *Overrides) AddGlob(pattern, color string) {
	if pattern == "" || color == "" {
		return
	}
	o.rules = append(o.rules, globRule{pattern: pattern, color: lipgloss.Color(color)})
}

// ColorFor returns the override color for a path, if any rule matches
// its base name.
func (o *Overrides) ColorFor(path string) (lipgloss.Color, bool) {
	base := filepath.Base(path)
	for i := len(o.rules) - 1; i >= 0; i-- {
		if ok, err := filepath.Match(o.rules[i].pattern, base); err == nil && ok {
			return o.rules[i].color, true
		}
	}
	return "", false
}

// Len reports the number of rules.
func (o *Overrides) Len() int {
	return len(o.rules)
}

// ParseLSColors folds LS_COLORS-style glob entries into the overrides.
// Only "pattern=sgr" entries whose pattern contains a glob character
// are taken; the two-letter indicator entries (di, ln, ...) concern
// node types the theme already covers and are skipped. Unsupported SGR
// sequences are ignored rather than guessed at.
func (o *Overrides) ParseLSColors(value string) {
	for _, entry := range strings.Split(value, ":") {
		pattern, sgr, ok := strings.Cut(entry, "=")
		if !ok || !strings.ContainsAny(pattern, "*?[") {
			continue
		}
		if color, ok := colorFromSGR(sgr); ok {
			o.AddGlob(pattern, color)
		}
	}
}

// colorFromSGR translates the foreground part of an SGR sequence into a
// lipgloss color string: classic 30-37/90-97 codes, 256-color
// ("38;5;N") and truecolor ("38;2;R;G;B") forms.
func colorFromSGR(sgr string) (string, bool) {
	parts := strings.Split(sgr, ";")
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return "", false
		}
		switch {
		case n >= 30 && n <= 37:
			return strconv.Itoa(n - 30), true
		case n >= 90 && n <= 97:
			return strconv.Itoa(n - 90 + 8), true
		case n == 38 && i+2 < len(parts) && parts[i+1] == "5":
			if idx, err := strconv.Atoi(parts[i+2]); err == nil && idx >= 0 && idx <= 255 {
				return strconv.Itoa(idx), true
			}
			return "", false
		case n == 38 && i+4 < len(parts) && parts[i+1] == "2":
			r, err1 := strconv.Atoi(parts[i+2])
			g, err2 := strconv.Atoi(parts[i+3])
			b, err3 := strconv.Atoi(parts[i+4])
			if err1 == nil && err2 == nil && err3 == nil {
				return "#" + hexByte(r) + hexByte(g) + hexByte(b), true
			}
			return "", false
		}
	}
	return "", false
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[v>>4], digits[v&0xF]})
}
