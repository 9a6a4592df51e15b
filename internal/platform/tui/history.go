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

	"github.com/vovakirdan/flappy-tui/internal/storage"
)

// History panel layout constants
const (
	maxHistory     = 100 // Max rounds to load
	historyChrome  = 9   // Title, summary, borders and help
	minTableHeight = 3
)

// HistoryKeyMap defines the key bindings for the round history panel.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Close  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Close, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Close, k.Quit}}
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
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/best"),
		),
		Close: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyView shows the journal as a table of recent rounds, or of the
// best rounds when toggled.
type historyView struct {
	store   *storage.Store
	best    bool
	rounds  []storage.RoundRecord
	summary storage.Summary
	loadErr error
	table   table.Model
	help    help.Model
	keys    HistoryKeyMap
	width   int
	height  int
}

func newHistoryView(store *storage.Store, width, height int) historyView {
	h := help.New()
	h.ShowAll = false

	v := historyView{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	return v
}

// createTable creates a new table sized for the current terminal.
func (v *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Best", Width: 6},
		{Title: "Cause", Width: 14},
		{Title: "Ticks", Width: 7},
		{Title: "Ended", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-historyChrome, minTableHeight)),
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

// Reload fetches the latest rounds and summary from the journal.
func (v *historyView) Reload() {
	v.rounds, v.summary, v.loadErr = nil, storage.Summary{}, nil
	if v.store != nil {
		load := v.store.RecentRounds
		if v.best {
			load = v.store.TopRounds
		}
		if v.rounds, v.loadErr = load(maxHistory); v.loadErr == nil {
			v.summary, v.loadErr = v.store.Summary()
		}
	}
	v.updateTableRows()
}

// updateTableRows copies the loaded rounds into the table.
func (v *historyView) updateTableRows() {
	rows := make([]table.Row, len(v.rounds))
	for i, r := range v.rounds {
		score := strconv.Itoa(r.Score)
		if r.NewRecord {
			score += "*"
		}
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			score,
			strconv.Itoa(r.Best),
			r.Cause,
			strconv.Itoa(r.Ticks),
			r.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// Resize rebuilds the table for a new terminal size.
func (v *historyView) Resize(width, height int) {
	v.width, v.height = width, height
	v.table = v.createTable()
	v.updateTableRows()
	v.help.Width = width
}

// Update switches between recent and best rounds, and forwards scrolling
// keys to the table.
func (v historyView) Update(msg tea.Msg) (historyView, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, v.keys.Toggle) {
		v.best = !v.best
		v.Reload()
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the history panel.
func (v historyView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerLine(titleStyle.Render(v.title()), v.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Rounds: %d   Best: %d   Average: %.1f",
		v.summary.Rounds, v.summary.Best, v.summary.AvgScore)
	b.WriteString(centerLine(summary, v.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerLine(tableStyle.Render(v.tableContent()), v.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

func (v historyView) title() string {
	if v.best {
		return "BEST ROUNDS"
	}
	return "ROUND HISTORY"
}

// tableContent renders the table or a placeholder.
func (v historyView) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case v.loadErr != nil:
		return emptyStyle.Render("Round history unavailable:\n" + v.loadErr.Error())
	case len(v.rounds) == 0:
		return emptyStyle.Render("No rounds played yet.\nPress SPACE to start!")
	}
	return v.table.View()
}

// centerLine pads every line of a block so it sits in the middle of width.
func centerLine(block string, width int) string {
	blockW := lipgloss.Width(block)
	if blockW >= width {
		return block
	}
	pad := strings.Repeat(" ", (width-blockW)/2)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
