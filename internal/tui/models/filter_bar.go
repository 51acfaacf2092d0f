package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/filter"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// filterBar is the search box plus status selector shared by every
// filterable list. The view is recomputed from the store on each render;
// nothing is cached.
type filterBar struct {
	schema record.Schema
	input  textinput.Model
	state  filter.State
}

func newFilterBar(kind record.Kind, placeholder string) filterBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 32
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.AccentPrimary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)

	return filterBar{
		schema: record.SchemaFor(kind),
		input:  ti,
		state:  filter.State{Status: filter.All},
	}
}

func (f *filterBar) editing() bool {
	return f.input.Focused()
}

// handleKey consumes the keys the bar owns. While editing, every key goes
// to the input and the search applies as typed; esc clears it, enter
// keeps it.
func (f *filterBar) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if f.editing() {
		switch msg.String() {
		case "esc":
			f.input.SetValue("")
			f.input.Blur()
		case "enter":
			f.input.Blur()
		default:
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			f.state.Search = f.input.Value()
			return true, cmd
		}
		f.state.Search = f.input.Value()
		return true, nil
	}

	switch msg.String() {
	case "/":
		return true, f.input.Focus()
	case "right", "l":
		f.state = filter.CycleStatus(f.state, f.schema, 1)
	case "left", "h":
		f.state = filter.CycleStatus(f.state, f.schema, -1)
	case "esc":
		f.reset()
	default:
		return false, nil
	}
	return true, nil
}

// update forwards non-key messages (cursor blink) to the input.
func (f *filterBar) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *filterBar) reset() {
	f.input.SetValue("")
	f.input.Blur()
	f.state = filter.State{Status: filter.All}
}

func (f *filterBar) apply(records []record.Record) filter.View {
	return filter.Compute(records, f.schema, f.state)
}

// active reports whether any criterion narrows the view.
func (f *filterBar) active() bool {
	s := filter.Normalize(f.state, f.schema)
	return s.Search != "" || s.Status != filter.All
}

func (f filterBar) View(width int) string {
	var search string
	switch {
	case f.input.Focused():
		search = f.input.View()
	case f.state.Search != "":
		search = styles.Blue("/ ") + lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(f.state.Search)
	default:
		search = styles.Dim("/ " + f.input.Placeholder)
	}

	current := filter.Normalize(f.state, f.schema).Status
	opts := filter.Options(f.schema)
	parts := make([]string, len(opts))
	for i, o := range opts {
		label := o
		if o == filter.All {
			label = "All Status"
		}
		if o == current {
			parts[i] = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Underline(true).Render(label)
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(styles.TextMuted).Render(label)
		}
	}
	status := strings.Join(parts, styles.Dim(" · "))

	return components.PadBetween("  "+search, status, width)
}

var filterHints = []components.KeyHint{
	{Key: "/", Desc: "search"},
	{Key: "←→", Desc: "status"},
	{Key: "esc", Desc: "clear"},
}
