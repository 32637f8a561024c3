/*
Package tui is the interactive search-as-you-type screen.

Every edit to the query restarts a debounce timer; when the typing pauses the
query is ranked off the UI goroutine and the results are delivered back to the
model as a resultsMsg. Results for a query that has since changed are dropped.
An empty query lists the most popular tools.
*/
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/khanglvm/toolbelt/internal/catalog"
	"github.com/khanglvm/toolbelt/internal/debounce"
	"github.com/khanglvm/toolbelt/internal/search"
)

// Searcher is the part of the search service the screen needs.
type Searcher interface {
	Query(query string, limit int) []search.ScoredResult
	Popular(limit int) []search.ScoredResult
	Record(query string, resultCount int)
}

// resultsMsg delivers ranked results for one query.
type resultsMsg struct {
	query   string
	results []search.ScoredResult
}

// Model is the bubbletea model of the search screen.
type Model struct {
	input     textinput.Model
	searcher  Searcher
	debouncer *debounce.Debouncer[string]
	keys      KeyMap
	styles    Styles
	limit     int

	results []search.ScoredResult
	query   string
	cursor  int
	width   int

	chosen   *catalog.ToolRecord
	quitting bool
}

// NewModel creates the screen. Debounced results are handed to send, which is
// normally tea.Program.Send.
func NewModel(s Searcher, limit int, delay time.Duration, send func(tea.Msg)) Model {
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	input := textinput.New()
	input.Placeholder = "Search tools, e.g. compress pdf"
	input.Prompt = "🔍 "
	input.CharLimit = 120
	input.Focus()

	m := Model{
		input:    input,
		searcher: s,
		keys:     DefaultKeyMap,
		styles:   DefaultStyles(),
		limit:    limit,
		results:  s.Popular(limit),
	}

	m.debouncer = debounce.New(delay, func(q string) {
		send(resultsMsg{query: q, results: runQuery(s, q, limit)})
	})

	return m
}

func runQuery(s Searcher, q string, limit int) []search.ScoredResult {
	if strings.TrimSpace(q) == "" {
		return s.Popular(limit)
	}
	return s.Query(q, limit)
}

// Chosen returns the tool picked with enter, if any.
func (m Model) Chosen() (catalog.ToolRecord, bool) {
	if m.chosen == nil {
		return catalog.ToolRecord{}, false
	}
	return *m.chosen, true
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsMsg:
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.results = msg.results
		m.query = msg.query
		m.cursor = 0
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.debouncer.Stop()
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if len(m.results) == 0 {
				return m, nil
			}
			m.debouncer.Stop()
			chosen := m.results[m.cursor].ToolRecord
			m.chosen = &chosen
			m.searcher.Record(m.query, len(m.results))
			m.quitting = true
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.debouncer.Trigger(m.input.Value())
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("toolbelt"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if strings.TrimSpace(m.query) == "" {
		b.WriteString(m.styles.Category.Render("Popular tools"))
		b.WriteString("\n")
	}

	if len(m.results) == 0 {
		b.WriteString(m.styles.Empty.Render(fmt.Sprintf("No tools match %q", m.query)))
		b.WriteString("\n")
	}

	for i, r := range m.results {
		line := fmt.Sprintf("%s %s", r.Title, m.styles.Category.Render("· "+r.Category))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("› " + line))
			b.WriteString("\n")
			b.WriteString(m.styles.Description.Render(r.Description))
		} else {
			b.WriteString(m.styles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move • enter open • esc quit"))
	return b.String()
}
