package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Swatch is one named entry of the color picker.
type Swatch struct {
	Name string
	Hex  string
}

// Palette lists the colors offered by the setup screen, in display order.
var Palette = []Swatch{
	{"red", "#ff0000"},
	{"yellow", "#ffff00"},
	{"orange", "#ffa500"},
	{"green", "#32cd32"},
	{"cyan", "#00ffff"},
	{"blue", "#1e90ff"},
	{"magenta", "#ff00ff"},
	{"white", "#ffffff"},
}

// PaletteIndex returns the palette position of a resolved color, or -1.
func PaletteIndex(color string) int {
	for i, s := range Palette {
		if strings.EqualFold(s.Hex, color) || strings.EqualFold(s.Name, color) {
			return i
		}
	}
	return -1
}

// ResolveColor turns a palette name, a #rgb / #rrggbb hex value or an ANSI
// color number into the form lipgloss expects.
func ResolveColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty color")
	}

	for _, sw := range Palette {
		if strings.EqualFold(sw.Name, s) {
			return sw.Hex, nil
		}
	}

	if strings.HasPrefix(s, "#") {
		hex := strings.ToLower(s[1:])
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		switch len(hex) {
		case 3:
			return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), nil
		case 6:
			return "#" + hex, nil
		default:
			return "", fmt.Errorf("invalid hex color %q", s)
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return strconv.Itoa(n), nil
}
