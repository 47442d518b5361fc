package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs maps each digit and the colon to three rows of half blocks.
var glyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▀█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {" ", "▀", "▀"},
}

// minBigWidth is the narrowest terminal that gets the block clock.
const minBigWidth = 30

// renderBigTime draws a clock string like "02:00" in block glyphs.
// Narrow terminals get a single bold line.
func renderBigTime(timeStr string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < minBigWidth {
		return style.Render(timeStr)
	}

	var rows [3][]string
	for _, ch := range timeStr {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}

	out := make([]string, len(rows))
	for i, parts := range rows {
		out[i] = style.Render(strings.Join(parts, " "))
	}
	return strings.Join(out, "\n")
}
