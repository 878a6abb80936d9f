package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/water-sort/internal/storage"
)

// HistoryKeyMap defines the key bindings for the history table.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryColumns are the journal table columns.
func HistoryColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Seed", Width: 20},
		{Title: "Result", Width: 9},
		{Title: "Pours", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Date", Width: 13},
	}
}

// HistoryRows converts journal records into table rows.
func HistoryRows(games []storage.GameRecord) []table.Row {
	rows := make([]table.Row, len(games))
	for i, g := range games {
		result := "gave up"
		if g.Cleared {
			result = "cleared"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", g.ID),
			fmt.Sprintf("%d", g.Seed),
			result,
			fmt.Sprintf("%d", g.Pours),
			fmt.Sprintf("%d", g.Ticks),
			g.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// HistoryTable builds a styled, focused table of games.
func HistoryTable(games []storage.GameRecord, height int) table.Model {
	t := table.New(
		table.WithColumns(HistoryColumns()),
		table.WithRows(HistoryRows(games)),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
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

// HistoryModel is the Bubble Tea model for browsing the play journal.
type HistoryModel struct {
	games    []storage.GameRecord
	stats    storage.JournalStats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model over already loaded records.
func NewHistoryModel(games []storage.GameRecord, stats storage.JournalStats, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	return HistoryModel{
		games:  games,
		stats:  stats,
		table:  HistoryTable(games, height-8),
		help:   h,
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history table.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-8, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("WATER SORT JOURNAL"))
	b.WriteString("\n")
	b.WriteString(SummaryLine(m.stats))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No games journaled yet.\nPour something first!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// SummaryLine describes journal totals in one line.
func SummaryLine(stats storage.JournalStats) string {
	if stats.Played == 0 {
		return "No games played"
	}
	rate := 100 * stats.Cleared / stats.Played
	line := fmt.Sprintf("Played %d  Cleared %d (%d%%)", stats.Played, stats.Cleared, rate)
	if !stats.LastPlayed.IsZero() {
		line += "  Last " + stats.LastPlayed.Format("2006-01-02 15:04")
	}
	return line
}

// RunHistory shows the journal until the user quits.
func RunHistory(store *storage.Store, limit, width, height int) error {
	games, err := store.RecentGames(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(games, stats, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
