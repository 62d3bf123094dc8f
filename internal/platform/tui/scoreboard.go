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

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// runsShown caps the rows fetched per mode.
const runsShown = 50

var (
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardNoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(1, 2)
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

type boardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultBoardKeys = boardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Mode:   key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→/tab", "mode")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel shows the recorded runs of one mode at a time, with a
// tab per registered mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	history   storage.History
	runs      []storage.ScoreEntry
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel builds the scoreboard on history, which may be nil for
// backends that keep no runs.
func NewScoreboardModel(history storage.History, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:   registry.List(),
		history: history,
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = newRunTable(height)
	m.load()
	return m
}

func newRunTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Ended", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load fetches runs and stats for the selected mode.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.history != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		m.runs, m.loadErr = m.history.TopScores(id, runsShown)
		if src, ok := m.history.(storage.StatsSource); ok && m.loadErr == nil {
			m.stats, _ = src.GetGameStats(id) // stats line is optional
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(r.Score), r.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultBoardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, defaultBoardKeys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, defaultBoardKeys.Mode):
			if n := len(m.modes); n > 0 {
				step := 1
				if s := msg.String(); s == "left" || s == "h" {
					step = n - 1
				}
				m.mode = (m.mode + step) % n
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-10, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveStyle.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.loadErr != nil:
		body = boardErrStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case m.history == nil:
		body = boardNoteStyle.Render("This backend keeps no run history.")
	case len(m.runs) == 0:
		body = boardNoteStyle.Render("No runs yet.")
	default:
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")

	if s := m.stats; s != nil && s.GamesCount > 0 {
		line := fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Last: %s",
			s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04"))
		b.WriteString(menuDimStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(defaultBoardKeys)))
	return b.String()
}

func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard full screen. It reports whether the
// player asked to go back to the menu rather than quit.
func RunScoreboard(history storage.History, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(history, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
