package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   *KeyMapper

	input  core.InputFrame
	state  core.GameState
	tickID int64

	recorded   bool // result of the current round already stored
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game. store may be nil, in which
// case nothing is recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
		tickID: nextTickID(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(screenshotDir()); err != nil {
			m.logger.Warn("could not save screenshot", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.input.Has(core.ActionBack) && (m.state.GameOver || m.state.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize restarts a running game on the new screen size. Games size
// their playfield on Reset only.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.state.GameOver {
		m.game.Reset(m.config)
		m.state = m.game.State()
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.record()
	m.input.Clear()
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// record stores the result of a finished round exactly once. Board games
// against the CPU produce a match row; solo games a score row. Hot-seat
// rounds are not recorded.
func (m *Model) record() {
	if !m.state.GameOver {
		m.recorded = false
		return
	}
	if m.recorded {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}

	id := m.game.ID()
	if m.state.Outcome != core.OutcomeNone {
		matchID, err := m.store.SaveMatch(storage.MatchResult{
			GameID:  id,
			Mode:    core.MatchModeVsCPU,
			Outcome: m.state.Outcome,
			Moves:   m.state.Moves,
		})
		if err != nil {
			m.logger.Warn("could not save match", "game", id, "err", err)
			return
		}
		m.logger.Debug("match saved", "game", id, "match", matchID, "outcome", m.state.Outcome)
		return
	}

	if _, ok := m.game.(registry.Opponent); ok {
		return
	}
	if m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(id, m.state.Score); err != nil {
		m.logger.Warn("could not save score", "game", id, "err", err)
		return
	}
	m.logger.Debug("score saved", "game", id, "score", m.state.Score)
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// saveScreenshot writes the current frame as plain text into dir.
func (m *Model) saveScreenshot(dir string) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game into the screen buffer and styles it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave the arcade.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the launcher.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game until the user quits or goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(game, store, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
