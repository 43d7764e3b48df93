package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/storage"
)

// maxRuns is the maximum number of runs loaded into the scoreboard.
const maxRuns = 100

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
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
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

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// ScoreboardModel is the Bubble Tea model for the high-score screen.
type ScoreboardModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	loadErr  error
	quitting bool
}

// NewScoreboardModel creates a scoreboard model and loads the runs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	runs, err := store.TopRuns(maxRuns)

	rows := make([]table.Row, 0, len(runs))
	for i, run := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", run.Score),
			run.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	h := help.New()
	h.Width = width

	return ScoreboardModel{
		store:   store,
		table:   t,
		help:    h,
		keys:    DefaultScoreboardKeyMap(),
		loadErr: err,
	}
}

// Init is a no-op; the runs are loaded at construction.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
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

	if m.loadErr != nil {
		return fmt.Sprintf("Could not load scores: %v\n", m.loadErr)
	}

	return scoreboardTitleStyle.Render("Stardodge High Scores") + "\n\n" +
		m.table.View() + "\n\n" +
		m.help.View(m.keys)
}

// RunScoreboard starts the interactive scoreboard program.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
