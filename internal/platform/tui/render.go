package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
)

// tokenWidth is the column width of a rendered cell. Tokens wider than
// this (ranges >= 100) overflow and shift the row.
const tokenWidth = 3

// RenderMaze renders a grid with one styled token per cell.
// Cells listed in changed are highlighted.
func RenderMaze(g *core.Grid, theme Theme, changed []core.Coord) string {
	return renderMaze(g, theme, changed, nil)
}

func renderMaze(g *core.Grid, theme Theme, changed []core.Coord, origin *core.Coord) string {
	highlight := make(map[core.Coord]bool, len(changed))
	for _, c := range changed {
		highlight[c] = true
	}

	var sb strings.Builder
	for y := 0; y < g.Size(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.Size(); x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			c := core.C(x, y)
			obj := g.At(c)
			style := theme.ObjectStyle(obj.Kind)
			switch {
			case origin != nil && *origin == c:
				style = style.Inherit(theme.Origin)
			case highlight[c]:
				style = style.Inherit(theme.Changed)
			}
			sb.WriteString(style.Render(fmt.Sprintf("%-*s", tokenWidth, obj.Token())))
		}
	}
	return sb.String()
}

// RenderPreview renders the maze before and after a detonation side by side,
// with the cells it changed highlighted and a summary line below.
func RenderPreview(title string, before, after *core.Grid, report core.Report, theme Theme) string {
	changed := before.Diff(after)
	origin := report.Origin

	left := theme.Border.Render(
		theme.Label.Render("before") + "\n" + renderMaze(before, theme, nil, &origin),
	)
	right := theme.Border.Render(
		theme.Label.Render("after") + "\n" + renderMaze(after, theme, changed, nil),
	)

	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf(
		"bombs triggered: %d  enemies hit: %d  destroyed: %d  cells changed: %d",
		report.BombsTriggered(), len(report.Damage), report.EnemiesDestroyed(), len(changed),
	)))
	return b.String()
}

// RenderSummary renders a maze with a title and object counts.
func RenderSummary(title string, g *core.Grid, theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Border.Render(RenderMaze(g, theme, nil)))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf(
		"size: %dx%d  bombs: %d  enemies: %d  deflectors: %d",
		g.Size(), g.Size(),
		g.Count(core.KindBomb)+g.Count(core.KindPiercingBomb),
		g.Count(core.KindEnemy),
		g.Count(core.KindDeflector),
	)))
	return b.String()
}
