package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Journal layout constants
const (
	maxJournalRuns  = 100
	journalChromeH  = 8 // Title, tabs, help and margins
	minJournalTable = 3
)

// JournalView selects which runs the journal lists.
type JournalView int

const (
	JournalRecent JournalView = iota
	JournalBest
)

func (v JournalView) String() string {
	if v == JournalBest {
		return "Best"
	}
	return "Recent"
}

// JournalKeyMap defines the key bindings for the journal screen.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Open   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Open, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch, k.Open},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "recent/best"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "events"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing recorded runs.
type JournalModel struct {
	store     *storage.Store
	gameID    string
	view      JournalView
	runs      []storage.RunRecord
	events    []core.Event // Events of the opened run; nil when the run list is shown
	openedID  int64
	table     table.Model
	help      help.Model
	keys      JournalKeyMap
	width     int
	height    int
	loadErr   error
	quitting  bool
	goingBack bool
}

// NewJournalModel creates a journal browser for one game.
func NewJournalModel(store *storage.Store, gameID string, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		store:  store,
		gameID: gameID,
		keys:   DefaultJournalKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *JournalModel) createTable() table.Model {
	var columns []table.Column
	if m.events != nil {
		columns = []table.Column{
			{Title: "#", Width: 5},
			{Title: "Tick", Width: 8},
			{Title: "Event", Width: 14},
			{Title: "Entity", Width: 8},
		}
	} else {
		columns = []table.Column{
			{Title: "Run", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Distance", Width: 10},
			{Title: "Gems", Width: 6},
			{Title: "Jumps", Width: 9},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-journalChromeH, minJournalTable)),
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

// loadRuns refreshes the run list for the current view.
func (m *JournalModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.store != nil {
		if m.view == JournalBest {
			m.runs, m.loadErr = m.store.TopRuns(m.gameID, maxJournalRuns)
		} else {
			m.runs, m.loadErr = m.store.RecentRuns(m.gameID, maxJournalRuns)
		}
	}
	m.updateTableRows()
}

// openSelected switches to the event list of the highlighted run.
func (m *JournalModel) openSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.runs) {
		return
	}
	events, err := m.store.RunEvents(m.runs[i].ID)
	if err != nil {
		m.loadErr = err
		return
	}
	if events == nil {
		events = []core.Event{}
	}
	m.events = events
	m.openedID = m.runs[i].ID
	m.table = m.createTable()
	m.updateTableRows()
}

func (m *JournalModel) closeEvents() {
	m.events = nil
	m.openedID = 0
	m.table = m.createTable()
	m.updateTableRows()
}

func (m *JournalModel) updateTableRows() {
	var rows []table.Row
	if m.events != nil {
		rows = make([]table.Row, len(m.events))
		for i, e := range m.events {
			entity := ""
			if e.ID != 0 {
				entity = fmt.Sprintf("%d", e.ID)
			}
			rows[i] = table.Row{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", e.Tick), string(e.Kind), entity}
		}
	} else {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", r.ID),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%.0f", r.Distance),
				fmt.Sprintf("%d", r.Collected),
				fmt.Sprintf("%d+%d", r.Jumps, r.DoubleJumps),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.events != nil {
				m.closeEvents()
				return m, nil
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.events == nil {
				m.view = (m.view + 1) % 2
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if m.events == nil {
				m.openSelected()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RUN JOURNAL"
	if m.events != nil {
		title = fmt.Sprintf("RUN JOURNAL - run #%d events", m.openedID)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.events == nil {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m JournalModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, v := range []JournalView{JournalRecent, JournalBest} {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return strings.Join(tabs, " ")
}

func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Journal unavailable:\n" + m.loadErr.Error())
	case m.store == nil:
		return emptyStyle.Render("Journal disabled.")
	case m.events == nil && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to fill the journal!")
	}
	return m.table.View()
}

// CurrentView returns which list is shown.
func (m JournalModel) CurrentView() JournalView {
	return m.view
}

// Runs returns the listed runs.
func (m JournalModel) Runs() []storage.RunRecord {
	return m.runs
}

// Events returns the events of the opened run, or nil.
func (m JournalModel) Events() []core.Event {
	return m.events
}

// IsGoingBack returns true if user wants to leave the journal.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal as a standalone program.
func RunJournal(store *storage.Store, gameID string, width, height int) error {
	model := NewJournalModel(store, gameID, width, height)
	model.keys.Back.SetHelp("esc/b", "close")

	p := tea.NewProgram(journalProgram{model}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// journalProgram quits when the journal is left with back.
type journalProgram struct {
	JournalModel
}

func (p journalProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.JournalModel.Update(msg)
	p.JournalModel = next.(JournalModel)
	if p.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}
