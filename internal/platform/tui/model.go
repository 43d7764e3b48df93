package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/game"
	"github.com/vovakirdan/stardodge/internal/storage"
)

// hudHeight is the number of terminal rows reserved for the HUD bar
// above the playfield.
const hudHeight = 1

var (
	hudStyle      = lipgloss.NewStyle().Bold(true)
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	powerOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	powerLowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Model is the Bubble Tea model running one game session. Key events
// move the ship immediately when they arrive; tick messages drive the
// simulation frames. Once the game is over no further tick is
// requested, so the loop stops scheduling frames by itself.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a Bubble Tea model for the game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	playH := core.Max(1, cfg.ScreenH-hudHeight)
	g.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  playH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, playH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Movement triggers apply
// immediately, whenever the event is dispatched relative to the frame
// clock; a rapid double-press is simply two discrete steps.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.game.MoveUp()
	case core.ActionDown:
		m.game.MoveDown()
	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
	}

	return m, nil
}

// restart fully reinitializes the session with a fresh seed and
// resumes the frame loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.screen.Width(),
		ScreenH:  m.screen.Height(),
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	m.gameState = m.game.State()
	m.scoreSaved = false
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. The viewport is
// mutable: the session keeps running with the new bounds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	playH := core.Max(1, msg.Height-hudHeight)
	m.screen.Resize(msg.Width, playH)
	m.game.Resize(msg.Width, playH)

	return m, nil
}

// handleTick runs one simulation frame. The frame that ends the game
// still executes fully (and is rendered on the next View); after it,
// no further tick is requested.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(now)
	m.gameState = result.State

	if m.gameState.GameOver {
		if m.store != nil && !m.scoreSaved && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveRun(m.gameState.Score, m.gameState.Score)
			m.scoreSaved = true
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".stardodge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("stardodge_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the HUD and the current playfield.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.gameState.GameOver {
		m.drawGameOver()
	}

	return m.hud() + "\n" + RenderScreen(m.screen)
}

// hud formats the score/power readout. Power displays rounded to an
// integer.
func (m Model) hud() string {
	powerStyle := powerOKStyle
	if m.gameState.Power < 30 {
		powerStyle = powerLowStyle
	}

	return hudStyle.Render(" Stardodge ") +
		hudLabelStyle.Render("  score ") + hudStyle.Render(fmt.Sprintf("%d", m.gameState.Score)) +
		hudLabelStyle.Render("  power ") + powerStyle.Render(fmt.Sprintf("%d", int(m.gameState.Power+0.5)))
}

// drawGameOver overlays the game-over banner on the playfield.
func (m Model) drawGameOver() {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  |  R to restart, Q to quit", m.gameState.Score)

	w, h := m.screen.Width(), m.screen.Height()
	m.screen.DrawTextColored((w-len(title))/2, h/2-1, title, core.ColorBrightRed)
	m.screen.DrawTextColored((w-len(subtitle))/2, h/2+1, subtitle, core.ColorWhite)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
