package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is a selectable game in the launcher.
type MenuItem struct {
	GameID  string
	Title   string
	Mode    core.MatchMode
	Summary string // best score or win/loss/draw record
}

// Board reports whether the item is a two-sided game whose mode can be
// switched.
func (it MenuItem) Board() bool {
	return it.Mode != core.MatchModeSolo
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keys           *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a launcher listing every registered game in
// registration order.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.Ordered()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:  g.ID,
			Title:   g.Title,
			Mode:    g.Mode,
			Summary: summary(store, g),
		})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// summary is the short result line shown next to a game.
func summary(store *storage.Store, g registry.GameInfo) string {
	if store == nil {
		return ""
	}
	if g.Mode == core.MatchModeSolo {
		best, err := store.HighScore(g.ID)
		if err != nil || best == 0 {
			return ""
		}
		return fmt.Sprintf("best %d", best)
	}
	rec, err := store.MatchRecord(g.ID)
	if err != nil || rec.Played() == 0 {
		return ""
	}
	return fmt.Sprintf("W%d L%d D%d", rec.Wins, rec.Losses, rec.Draws)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionMode:
		if len(m.items) > 0 && m.items[m.cursor].Board() {
			it := &m.items[m.cursor]
			if it.Mode == core.MatchModeVsCPU {
				it.Mode = core.MatchModeHotseat
			} else {
				it.Mode = core.MatchModeVsCPU
			}
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("C L A S S I C   A R C A D E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(menuSubtitleStyle.Render(centerText("Select a game", m.width)))
	b.WriteString("\n\n")

	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, runewidth.StringWidth(it.Title))
	}
	for i, it := range m.items {
		line := runewidth.FillRight(it.Title, titleW)
		if it.Board() {
			line += fmt.Sprintf("  < %-8s >", it.Mode)
		} else {
			line += strings.Repeat(" ", 14)
		}
		line += "  " + runewidth.FillRight(it.Summary, 12)

		if i == m.cursor {
			b.WriteString(padLeft(m.width, line))
			b.WriteString(menuSelectedStyle.Render(line))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  Left/Right: Mode  Enter: Play  Tab: Scores  Q: Quit"
	b.WriteString(menuHelpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// padLeft returns the indent that centres text within width.
func padLeft(width int, text string) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return ""
	}
	return strings.Repeat(" ", (width-w)/2)
}

// centerText centres plain text within width display columns.
func centerText(text string, width int) string {
	return padLeft(width, text) + text
}

// MenuResult holds the outcome of one launcher run.
type MenuResult struct {
	GameID          string
	Mode            core.MatchMode
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.selected != nil:
		result.GameID = m.selected.GameID
		result.Mode = m.selected.Mode
	default:
		result.Quit = true
	}
	return result
}

// RunMenu shows the launcher and returns the user's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
