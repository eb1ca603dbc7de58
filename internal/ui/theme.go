package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Title, Muted, Accent, Success, Error, Selected lipgloss.Style

	Border           lipgloss.Border
	BorderColor      lipgloss.TerminalColor
	SymOK, SymFail   string
	SymBullet        string
	SymDelete        string
	SelectedPrefix   string
	UnselectedPrefix string
}

// ThemeByName returns the named theme; unknown names get "classic".
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:            lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:           lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:          lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:            lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Border:           lipgloss.RoundedBorder(),
			BorderColor:      lipgloss.Color("13"),
			SymOK:            "✔",
			SymFail:          "✖",
			SymBullet:        "◆",
			SymDelete:        "×",
			SelectedPrefix:   "▶ ",
			UnselectedPrefix: "  ",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Title:            plain,
			Muted:            plain,
			Accent:           plain,
			Success:          plain,
			Error:            plain,
			Selected:         plain,
			Border:           asciiBorder,
			BorderColor:      lipgloss.NoColor{},
			SymOK:            "ok",
			SymFail:          "error:",
			SymBullet:        "-",
			SymDelete:        "x",
			SelectedPrefix:   "> ",
			UnselectedPrefix: "  ",
		}
	default: // classic
		return Theme{
			Title:            lipgloss.NewStyle().Bold(true),
			Muted:            lipgloss.NewStyle().Faint(true),
			Accent:           lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:          lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:            lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:         lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:           lipgloss.RoundedBorder(),
			BorderColor:      lipgloss.Color("8"),
			SymOK:            "✔",
			SymFail:          "✖",
			SymBullet:        "•",
			SymDelete:        "×",
			SelectedPrefix:   "> ",
			UnselectedPrefix: "  ",
		}
	}
}

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}
