package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ohflip/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show page list sidebar
	sidebarWidth       = 20  // Width of page list sidebar
	maxScores          = 100 // Max rows to load
)

// Best keys shown on the records page, in display order.
var bestRecords = []struct {
	Key   string
	Label string
	Unit  string
}{
	{"ohflip.maxHeightFt", "Best height", " ft"},
	{"ohflip.maxTotalFlips", "Most flips in a run", ""},
}

// scoreboardPage is one view of the scoreboard.
type scoreboardPage int

const (
	pageRuns scoreboardPage = iota
	pageScores
	pageRecords
	pageCount
)

func (p scoreboardPage) String() string {
	switch p {
	case pageRuns:
		return "Top runs"
	case pageScores:
		return "High scores"
	case pageRecords:
		return "Records"
	default:
		return "?"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
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
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store       *storage.Store
	gameID      string
	page        scoreboardPage
	rows        []table.Row
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the page list sidebar
	embedded    bool // Running inside another model; back does not quit
}

// NewScoreboardModel creates a new scoreboard model for gameID.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		gameID:      gameID,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	return m
}

// columns returns the table layout of the current page.
func (m *ScoreboardModel) columns() []table.Column {
	switch m.page {
	case pageRuns:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Flips", Width: 7},
			{Title: "Height", Width: 8},
			{Title: "Perfect", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: 14},
		}
	case pageScores:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: 20},
		}
	default:
		return []table.Column{
			{Title: "Record", Width: 22},
			{Title: "Value", Width: 20},
		}
	}
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// load fetches the rows of the current page and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows, m.loadErr = nil, nil
	if m.store != nil {
		m.rows, m.loadErr = m.fetchRows()
	}
	m.table = m.createTable()
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) fetchRows() ([]table.Row, error) {
	switch m.page {
	case pageRuns:
		runs, err := m.store.TopRuns(m.gameID, maxScores)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(runs))
		for i, r := range runs {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", r.Flips),
				fmt.Sprintf("%d ft", r.MaxHeightFt),
				fmt.Sprintf("%d", r.Perfects),
				formatDuration(time.Duration(r.DurationSecs) * time.Second),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil

	case pageScores:
		scores, err := m.store.TopScores(m.gameID, maxScores)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(scores))
		for i, s := range scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil

	default:
		return m.recordRows()
	}
}

// recordRows lists persisted bests followed by aggregate stats.
func (m *ScoreboardModel) recordRows() ([]table.Row, error) {
	var rows []table.Row
	for _, r := range bestRecords {
		v, ok, err := m.store.Best(r.Key)
		if err != nil {
			return nil, err
		}
		value := "-"
		if ok {
			value = fmt.Sprintf("%d%s", v, r.Unit)
		}
		rows = append(rows, table.Row{r.Label, value})
	}

	stats, err := m.store.GetGameStats(m.gameID)
	if err != nil {
		return nil, err
	}
	rows = append(rows,
		table.Row{"Runs recorded", fmt.Sprintf("%d", stats.RunsCount)},
		table.Row{"Flips landed", fmt.Sprintf("%d", stats.TotalFlips)},
		table.Row{"Average flips", fmt.Sprintf("%.1f", stats.AvgFlips)},
	)
	if !stats.LastPlayed.IsZero() {
		rows = append(rows, table.Row{"Last played", stats.LastPlayed.Format("Jan 02 15:04")})
	}
	return rows, nil
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage):
			m.page = (m.page + 1) % pageCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.page = (m.page + pageCount - 1) % pageCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208")).
		MarginBottom(1)

	title := fmt.Sprintf("OH, FLIP - %s", strings.ToUpper(m.page.String()))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar of pages.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Pages\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for p := scoreboardPage(0); p < pageCount; p++ {
		cursor := "  "
		style := lipgloss.NewStyle()
		if p == m.page {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + p.String()))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the scoreboard with page tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, pageCount)
	for p := scoreboardPage(0); p < pageCount; p++ {
		if p == m.page {
			tabs = append(tabs, activeTabStyle.Render(p.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+p.String()+" "))
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.page)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Score storage is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render("No runs recorded yet.\nLand a flip to get on the board!")
	}

	return m.table.View()
}

// centerText pads s so it is centered within width.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	model := NewScoreboardModel(store, gameID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
