// Demo program to visually test the TimeAgo component
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"timeago/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	label ui.TimeAgo
	input textinput.Model
	log   []string
	mods  ui.Modifiers
}

func initialModel() model {
	ti := textinput.New()
	ti.Placeholder = "2024-03-15T10:00:00Z or mods:seconds.strict ..."
	ti.Focus()
	ti.Width = 46

	return model{
		// A one-second cadence makes the refreshes visible while playing.
		label: ui.NewTimeAgo(time.Now().Add(-5*time.Minute), ui.WithInterval(time.Second)),
		input: ti,
		log:   []string{},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.label.Init())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle global keys first
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.input.Value() == "" {
				return m, tea.Quit
			}
		case "h":
			if m.input.Value() == "" {
				m.label = m.label.Hide()
				m.addLog("Hidden: refreshes suspended")
				return m, nil
			}
		case "s":
			if m.input.Value() == "" {
				var cmd tea.Cmd
				m.label, cmd = m.label.Show()
				m.addLog("Shown: one render, then the cadence resumes")
				return m, cmd
			}
		case "x":
			if m.input.Value() == "" {
				m.label = m.label.Stop()
				m.addLog("Stopped: the binding is dead for good")
				return m, nil
			}
		}

		if msg.Type == tea.KeyEnter {
			raw := strings.TrimSpace(m.input.Value())
			if raw != "" {
				var cmd tea.Cmd
				if mods, ok := strings.CutPrefix(raw, "mods:"); ok {
					m.mods = ui.ParseModifiers(mods)
					m.label, cmd = m.label.SetModifiers(m.mods)
					canonical := m.mods.String()
					if canonical == "" {
						canonical = "(defaults)"
					}
					m.addLog(fmt.Sprintf("Modifiers: %s", canonical))
				} else {
					m.label, cmd = m.label.SetValue(raw)
					m.addLog(fmt.Sprintf("Bound: %s", raw))
				}
				if cmd != nil {
					cmds = append(cmds, cmd)
				}
				m.input.SetValue("")
			}
			return m, tea.Batch(cmds...)
		}

	case ui.RenderedMsg:
		direction := "past"
		if !msg.IsPast {
			direction = "future"
		}
		m.addLog(fmt.Sprintf("Rendered: %q (%s)", m.label.Label(), direction))
		return m, nil
	}

	// Update the label (start, ticks)
	var labelCmd tea.Cmd
	m.label, labelCmd = m.label.Update(msg)
	if labelCmd != nil {
		cmds = append(cmds, labelCmd)
	}

	// Update text input
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) addLog(entry string) {
	m.log = append(m.log, entry)
	if len(m.log) > 8 {
		m.log = m.log[1:]
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginTop(1)

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TimeAgo Demo"))
	s.WriteString("\n\n")

	mods := m.mods.String()
	if mods == "" {
		mods = "(defaults)"
	}
	s.WriteString(fmt.Sprintf("State: %s  Mods: %s\n\n",
		stateStyle.Render(strings.ToUpper(m.label.State().String())), mods))

	s.WriteString(labelStyle.Render("LABEL"))
	s.WriteString("\n")

	labelView := m.label.View()
	if labelView == "" {
		labelView = "(no label)"
	}
	s.WriteString(boxStyle.Width(50).Render(labelView))
	s.WriteString("\n\n")

	s.WriteString(m.input.View())
	s.WriteString("\n")

	s.WriteString(helpStyle.Render("Enter rebind • mods:… restyle • h hide s show x stop (empty input) • q quit"))
	s.WriteString("\n")

	if len(m.log) > 0 {
		s.WriteString(logStyle.Render("\nLog:"))
		s.WriteString("\n")
		for _, entry := range m.log {
			s.WriteString(logStyle.Render("  " + entry))
			s.WriteString("\n")
		}
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
