package main

// tui.go — the one-question-at-a-time wizard prompt.
//
// Every question is answered as free text in a single textinput; the typed
// decoding (bool, number, enum, list) happens after the form completes, in
// forms.go. Ctrl+C or Esc cancels the whole wizard.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	stageStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dangerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// promptModel is a bubbletea model that asks one question at a time.
type promptModel struct {
	title     string
	questions []question
	idx       int
	inputs    []textinput.Model
	done      bool
}

func newPromptModel(title string, questions []question) promptModel {
	inputs := make([]textinput.Model, len(questions))
	for i := range questions {
		ti := textinput.New()
		ti.CharLimit = 256
		inputs[i] = ti
	}
	m := promptModel{
		title:     title,
		questions: questions,
		inputs:    inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.idx < len(m.inputs)-1 {
				m.inputs[m.idx].Blur()
				m.idx++
				m.inputs[m.idx].Focus()
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.inputs[m.idx], cmd = m.inputs[m.idx].Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || len(m.questions) == 0 {
		return ""
	}
	q := m.questions[m.idx]
	var b strings.Builder
	b.WriteString(stageStyle.Render(m.title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "[%d/%d] %s", m.idx+1, len(m.questions), q.prompt)
	if hint := q.hint(); hint != "" {
		b.WriteString(" " + hintStyle.Render(hint))
	}
	b.WriteString("\n")
	b.WriteString(m.inputs[m.idx].View())
	b.WriteString("\n")
	return b.String()
}

// promptForm runs the TUI and returns raw answers keyed by question.key.
func promptForm(title string, questions []question) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}
	m := newPromptModel(title, questions)
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return nil, fmt.Errorf("wizard cancelled")
	}
	answers := make(map[string]string, len(questions))
	for i, q := range questions {
		answers[q.key] = strings.TrimSpace(final.inputs[i].Value())
	}
	return answers, nil
}
