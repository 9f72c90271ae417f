package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// KitProgressModel - Live progress for batch asset generation
// =============================================================================

// kitFileMsg reports one generated file.
type kitFileMsg string

// kitDoneMsg reports completion of the whole batch.
type kitDoneMsg struct {
	files []string
	err   error
}

// KitProgressModel is the bubbletea model showing batch generation progress
// as a filling bar with the name of the file currently being written.
type KitProgressModel struct {
	Total   int
	Done    int
	Current string
	Files   []string
	Err     error

	events <-chan tea.Msg
	width  int
}

// NewKitProgressModel creates a progress model for a batch of total files,
// fed by messages arriving on events.
func NewKitProgressModel(total int, events <-chan tea.Msg) KitProgressModel {
	return KitProgressModel{Total: total, events: events, width: 30}
}

func (m KitProgressModel) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent blocks on the generation channel and forwards the next event.
func (m KitProgressModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m KitProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case kitFileMsg:
		m.Done++
		m.Current = string(msg)
		return m, m.waitForEvent()
	case kitDoneMsg:
		m.Files = msg.files
		m.Err = msg.err
		m.Current = ""
		return m, tea.Quit
	}
	return m, nil
}

func (m KitProgressModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Generating UI Kit"))
	b.WriteString("\n\n")

	filled := 0
	if m.Total > 0 {
		filled = m.Done * m.width / m.Total
	}
	bar := styleBarFill.Render(strings.Repeat("█", filled)) +
		styleBarEmpty.Render(strings.Repeat("░", m.width-filled))
	b.WriteString(fmt.Sprintf("  %s %s\n", bar, StyleDim.Render(fmt.Sprintf("[%d/%d]", m.Done, m.Total))))

	if m.Current != "" {
		b.WriteString("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(m.Current) + "\n")
	}

	return b.String()
}
