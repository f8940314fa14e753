package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/wordwheel/internal/config"
)

// Theme holds the colors used for the board.
type Theme struct {
	Tile     tcell.Color
	Revealed tcell.Color
	Active   tcell.Color
	Dim      tcell.Color
}

// DefaultTheme is used when no theme is configured.
func DefaultTheme() Theme {
	return Theme{
		Tile:     tcell.NewRGBColor(0x1b, 0x4f, 0x9c),
		Revealed: tcell.NewRGBColor(0xf5, 0xf1, 0xe3),
		Active:   tcell.NewRGBColor(0xf2, 0xc1, 0x4e),
		Dim:      tcell.NewRGBColor(0x5c, 0x5c, 0x5c),
	}
}

// ParseTheme converts configured hex colors. Empty entries keep the default.
func ParseTheme(tc config.ThemeConfig) (Theme, error) {
	t := DefaultTheme()
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"tile", tc.Tile, &t.Tile},
		{"revealed", tc.Revealed, &t.Revealed},
		{"active", tc.Active, &t.Active},
		{"dim", tc.Dim, &t.Dim},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := hexColor(f.hex)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return t, nil
}

func hexColor(s string) (tcell.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

func (t Theme) hiddenStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Tile).Foreground(t.Revealed)
}

func (t Theme) revealedStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Revealed).Foreground(tcell.ColorBlack).Bold(true)
}

func (t Theme) activeStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Active).Bold(true)
}

func (t Theme) dimStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Dim)
}

func (t Theme) textStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorWhite)
}
