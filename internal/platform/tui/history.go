// Package tui provides the terminal presentation of mazes and run history.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-bomber/internal/storage"
)

// HistoryModel is the Bubble Tea model for browsing recorded detonations.
type HistoryModel struct {
	runs         []storage.Run
	table        table.Model
	help         help.Model
	keys         HistoryKeyMap
	theme        Theme
	width        int
	height       int
	failuresOnly bool
	quitting     bool
}

// NewHistoryModel creates a history browser over the given runs.
func NewHistoryModel(runs []storage.Run, theme Theme, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		runs:   runs,
		help:   h,
		keys:   DefaultHistoryKeyMap(),
		theme:  theme,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.table.SetRows(m.rows())
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Maze", Width: 20},
		{Title: "X,Y", Width: 7},
		{Title: "Outcome", Width: 16},
		{Title: "Bombs", Width: 6},
		{Title: "Killed", Width: 6},
		{Title: "Date", Width: 16},
	}

	// Give the maze column the spare width
	fixed := 0
	for _, c := range columns {
		fixed += c.Width + 2
	}
	if spare := m.width - 4 - fixed; spare > 0 {
		columns[1].Width += min(spare, 30)
	}

	height := m.height - 6 // Leave room for title, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// rows converts the visible runs to table rows.
func (m HistoryModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.runs))
	for _, r := range m.VisibleRuns() {
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			r.Maze,
			fmt.Sprintf("%d,%d", r.X, r.Y),
			r.Outcome,
			strconv.Itoa(r.BombsTriggered),
			strconv.Itoa(r.EnemiesDestroyed),
			date,
		})
	}
	return rows
}

// VisibleRuns returns the runs shown under the current filter.
func (m HistoryModel) VisibleRuns() []storage.Run {
	if !m.failuresOnly {
		return m.runs
	}
	var failed []storage.Run
	for _, r := range m.runs {
		if r.Outcome != "ok" {
			failed = append(failed, r)
		}
	}
	return failed
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows())
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Failures):
			m.failuresOnly = !m.failuresOnly
			m.table.SetRows(m.rows())
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "Detonation history"
	if m.failuresOnly {
		title += " (failures)"
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n\n")

	if len(m.VisibleRuns()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(m.theme.Border.Render(emptyStyle.Render("No runs recorded yet.")))
	} else {
		b.WriteString(m.theme.Border.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory runs the history browser until the user quits.
func RunHistory(runs []storage.Run, theme Theme, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(runs, theme, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// FormatRuns renders runs as a plain text table.
func FormatRuns(runs []storage.Run) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-5s  %-24s  %-7s  %-16s  %-5s  %-6s  %s\n", "ID", "Maze", "X,Y", "Outcome", "Bombs", "Killed", "Date")
	fmt.Fprintf(&b, "  %-5s  %-24s  %-7s  %-16s  %-5s  %-6s  %s\n", "--", "----", "---", "-------", "-----", "------", "----")
	for _, r := range runs {
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "  %-5d  %-24s  %-7s  %-16s  %-5d  %-6d  %s\n",
			r.ID, r.Maze, fmt.Sprintf("%d,%d", r.X, r.Y), r.Outcome,
			r.BombsTriggered, r.EnemiesDestroyed, date)
	}
	return b.String()
}

// FormatRun renders the details of a single run.
func FormatRun(r storage.Run) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run #%d\n\n", r.ID)
	fmt.Fprintf(&b, "  Maze:       %s\n", r.Maze)
	fmt.Fprintf(&b, "  Trigger:    %d,%d\n", r.X, r.Y)
	fmt.Fprintf(&b, "  Outcome:    %s\n", r.Outcome)
	if r.Size > 0 {
		fmt.Fprintf(&b, "  Size:       %dx%d\n", r.Size, r.Size)
	}
	fmt.Fprintf(&b, "  Bombs:      %d\n", r.BombsTriggered)
	fmt.Fprintf(&b, "  Enemies:    %d hit, %d destroyed\n", r.EnemiesDamaged, r.EnemiesDestroyed)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "  Date:       %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
