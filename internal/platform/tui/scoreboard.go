package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
	maxRows            = 100
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the score ranking of solo games and the match
// history of board games, one game at a time.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  *storage.Store

	rows   []table.Row
	record storage.Record
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.Ordered(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	return m
}

func (m ScoreboardModel) hasGames() bool { return len(m.games) > 0 }

func (m ScoreboardModel) current() registry.GameInfo {
	return m.games[m.cursor]
}

func (m ScoreboardModel) board() bool {
	return m.hasGames() && m.current().Mode != core.MatchModeSolo
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) columns() []table.Column {
	if m.board() {
		return []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Mode", Width: 9},
			{Title: "Result", Width: 7},
			{Title: "Moves", Width: 6},
		}
	}

	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: max(14, min(avail-22, 20))},
	}
}

// load reads the selected game's results and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.record = storage.Record{}
	if m.store != nil && m.hasGames() {
		if m.board() {
			m.rows = m.matchRows(m.current().ID)
		} else {
			m.rows = m.scoreRows(m.current().ID)
		}
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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
	m.table = t
}

func (m *ScoreboardModel) scoreRows(gameID string) []table.Row {
	scores, err := m.store.TopScores(gameID, maxRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprint(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	return rows
}

func (m *ScoreboardModel) matchRows(gameID string) []table.Row {
	if rec, err := m.store.MatchRecord(gameID); err == nil {
		m.record = rec
	}
	matches, err := m.store.RecentMatches(gameID, maxRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(matches))
	for i, mr := range matches {
		rows[i] = table.Row{mr.CreatedAt.Format("Jan 02 15:04"), mr.Mode.String(), mr.Outcome.String(), fmt.Sprint(mr.Moves)}
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the game selection by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if !m.hasGames() {
		return
	}
	n := len(m.games)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.hasGames() {
		g := m.current()
		title = "HIGH SCORES - " + g.Title
		if m.board() {
			title = fmt.Sprintf("RECORD - %s  W %d  L %d  D %d", g.Title, m.record.Wins, m.record.Losses, m.record.Draws)
		}
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	content := panelStyle.Render(m.tableView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), "  ", content))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.tabsView()))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content))
	}

	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) sidebarView() string {
	var sb strings.Builder
	sb.WriteString("Games\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, g := range m.games {
		name := runewidth.Truncate(g.Title, sidebarWidth-6, ".")
		if i == m.cursor {
			sb.WriteString(menuTitleStyle.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")
	}
	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

func (m ScoreboardModel) tabsView() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := runewidth.Truncate(g.Title, 10, ".")
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && m.hasGames() {
		line = fmt.Sprintf("< %s >", m.current().Title)
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.rows) > 0 {
		return m.table.View()
	}
	if m.board() {
		return emptyStyle.Render("No rounds against the CPU yet.\nBeat it to open your record!")
	}
	return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
}

// IsGoingBack returns true if the user wants the menu again.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard. It reports whether the user wants to
// go back to the menu rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
