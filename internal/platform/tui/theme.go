package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
)

// Theme contains the visual styles used to render mazes.
type Theme struct {
	// Object styles
	Empty        lipgloss.Style
	Enemy        lipgloss.Style
	Bomb         lipgloss.Style
	PiercingBomb lipgloss.Style
	Rock         lipgloss.Style
	Wall         lipgloss.Style
	Deflector    lipgloss.Style

	// Cells changed by a detonation
	Changed lipgloss.Style
	// Origin of a detonation
	Origin lipgloss.Style

	// Panel styles
	Title  lipgloss.Style
	Label  lipgloss.Style
	Border lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Enemy:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
		Bomb:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		PiercingBomb: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Rock:         lipgloss.NewStyle().Foreground(lipgloss.Color("137")), // Brown
		Wall:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Deflector:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // Bright cyan

		Changed: lipgloss.NewStyle().Background(lipgloss.Color("52")),
		Origin:  lipgloss.NewStyle().Background(lipgloss.Color("88")).Bold(true),

		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Enemy = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Bomb = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true)
	theme.PiercingBomb = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true).Bold(true)
	theme.Rock = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.Deflector = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Changed = lipgloss.NewStyle().Reverse(true)
	theme.Origin = lipgloss.NewStyle().Reverse(true).Bold(true)
	return theme
}

// PlainTheme returns a theme without any styling, for non-terminal output.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Empty: plain, Enemy: plain, Bomb: plain, PiercingBomb: plain,
		Rock: plain, Wall: plain, Deflector: plain,
		Changed: plain, Origin: plain,
		Title: plain, Label: plain,
		Border: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// ThemeByName returns the named theme; unknown names get the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "monochrome":
		return MonochromeTheme()
	case "plain":
		return PlainTheme()
	default:
		return DefaultTheme()
	}
}

// ObjectStyle returns the style for an object kind.
func (t Theme) ObjectStyle(k core.Kind) lipgloss.Style {
	switch k {
	case core.KindEnemy:
		return t.Enemy
	case core.KindBomb:
		return t.Bomb
	case core.KindPiercingBomb:
		return t.PiercingBomb
	case core.KindRock:
		return t.Rock
	case core.KindWall:
		return t.Wall
	case core.KindDeflector:
		return t.Deflector
	default:
		return t.Empty
	}
}
