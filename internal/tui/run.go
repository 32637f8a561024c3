package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/khanglvm/toolbelt/internal/catalog"
)

// Run shows the search screen on the terminal until the user quits and
// returns the chosen tool, if any.
func Run(s Searcher, limit int, delay time.Duration, in io.Reader, out io.Writer) (catalog.ToolRecord, bool, error) {
	var program *tea.Program
	send := func(msg tea.Msg) {
		program.Send(msg)
	}

	program = tea.NewProgram(NewModel(s, limit, delay, send), tea.WithInput(in), tea.WithOutput(out))

	final, err := program.Run()
	if err != nil {
		return catalog.ToolRecord{}, false, fmt.Errorf("search screen failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return catalog.ToolRecord{}, false, nil
	}
	rec, chosen := m.Chosen()
	return rec, chosen, nil
}
