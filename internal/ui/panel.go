package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shoplist/internal/model"
)

// MaxTitleWidth caps how much of a title a row shows.
const MaxTitleWidth = 80

// Panel frames lines in the theme's border.
func Panel(t Theme, lines []string) string {
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Header is the list heading with the item count.
func Header(t Theme, count int) string {
	return fmt.Sprintf("%s   %s %d",
		t.Title.Render("Shopping list"),
		t.Accent.Render("Total"), count,
	)
}

// Row renders one item with its identifier and delete control.
func Row(t Theme, it model.Item) string {
	return fmt.Sprintf("%s %s %s  %s",
		t.Muted.Render(fmt.Sprintf("%3d.", it.ID)),
		t.Muted.Render(t.SymBullet),
		Truncate(it.Title, MaxTitleWidth),
		t.Error.Render(t.SymDelete),
	)
}

// ListLines renders the header followed by one row per item.
func ListLines(t Theme, items []model.Item) []string {
	lines := []string{Header(t, len(items)), ""}
	if len(items) == 0 {
		return append(lines, t.Muted.Render("no items"))
	}
	for _, it := range items {
		lines = append(lines, Row(t, it))
	}
	return lines
}

// Truncate shortens s to at most width runes, ending in "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
