// Package tui implements the interactive request loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Runner executes one natural-language request and returns its report.
type Runner func(request string) (string, error)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

type model struct {
	input textinput.Model
	run   Runner
	quit  bool
}

func newModel(run Runner) model {
	ti := textinput.New()
	ti.Placeholder = "what would you like to change?"
	ti.Prompt = promptStyle.Render("agentcfg> ")
	ti.CharLimit = 500
	ti.Width = 80
	ti.Focus()

	return model{input: ti, run: run}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit

		case tea.KeyEnter:
			request := strings.TrimSpace(m.input.Value())
			m.input.Reset()

			switch request {
			case "":
				return m, nil
			case "exit", "quit":
				m.quit = true
				return m, tea.Quit
			}

			// Requests are quick local file operations, so running one
			// inline keeps the single-invocation-at-a-time contract.
			echo := echoStyle.Render("> " + request)
			report, err := m.run(request)
			if err != nil {
				return m, tea.Println(echo + "\n" + errorStyle.Render("Error: "+err.Error()) + "\n")
			}
			return m, tea.Println(echo + "\n" + report + "\n")
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n",
		m.input.View(),
		helpStyle.Render("enter runs the request · exit or ctrl+d leaves"))
}

// Run starts the interactive loop over the given runner and blocks
// until the user leaves.
func Run(run Runner) error {
	_, err := tea.NewProgram(newModel(run)).Run()
	return err
}
