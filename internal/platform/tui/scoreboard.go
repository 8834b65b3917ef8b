package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/endless-dodge/internal/core"
	"github.com/vovakirdan/endless-dodge/internal/storage"
)

// maxScoreboardRows caps how much history is loaded into the table.
const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
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
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	store    *storage.Store
	stats    *storage.RunStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard model and loads the run history.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Survived", Width: 10},
		{Title: "Dodged", Width: 8},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	if store != nil {
		if runs, err := store.TopRuns(maxScoreboardRows); err == nil {
			for i, r := range runs {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", r.Score),
					fmt.Sprintf("%.1fs", r.Duration),
					fmt.Sprintf("%d", r.Dodged),
					r.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
		if stats, err := store.Stats(); err == nil {
			m.stats = stats
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Max(3, height-6)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("15")).Bold(true)
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and quit keys.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(core.Max(3, msg.Height-6))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Endless Dodge - Best Runs")

	statsLine := "No runs recorded yet."
	if m.stats != nil && m.stats.RunCount > 0 {
		statsLine = fmt.Sprintf("Runs: %d  Best: %d  Avg: %.0f",
			m.stats.RunCount, m.stats.BestScore, m.stats.AvgScore)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		statsLine,
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunScoreboard starts the interactive run history viewer.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
