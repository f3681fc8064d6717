package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormModel collects the clinic answers. Enter on the last field, or
// ctrl+s on any field, renders the override and hands it to the result
// page.
type FormModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string
}

// NewFormModel creates a FormModel with one input per form field and the
// clinic name focused. prefill, when non-nil, seeds the inputs.
func NewFormModel(prefill *Answers) *FormModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = f.charLimit
		inputs[i].Width = 48
		inputs[i].Prompt = ""
	}

	if prefill != nil {
		values := prefill.fields()
		for i := range inputs {
			inputs[i].SetValue(*values[i])
		}
	}
	inputs[0].Focus()

	return &FormModel{inputs: inputs}
}

// Init implements [tea.Model].
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.down):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.up):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			return m, m.generate()
		case key.Matches(keyMsg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				m.focusNext()
				return m, nil
			}
			return m, m.generate()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *FormModel) View() string {
	var b strings.Builder
	for i, f := range formFields {
		if f.section != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(titleStyle.Render(f.section))
			b.WriteString("\n")
		}

		label := f.label
		if f.required {
			label += " *"
		}
		if i == m.focus {
			b.WriteString(focusedStyle.Render("> "))
			b.WriteString(focusedStyle.Inherit(labelStyle).Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString(" [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CLINIC CONFIGURATION",
		strings.TrimRight(b.String(), "\n"),
		"tab/↓: next │ shift+tab/↑: previous │ enter: next/generate │ ctrl+s: generate")
}

// Answers returns the current input values.
func (m *FormModel) Answers() Answers {
	var a Answers
	values := a.fields()
	for i := range m.inputs {
		*values[i] = m.inputs[i].Value()
	}
	return a
}

func (m *FormModel) generate() tea.Cmd {
	out, err := Generate(m.Answers())
	if err != nil {
		m.errMsg = err.Error()
		m.setFocus(0)
		return nil
	}

	m.errMsg = ""
	return func() tea.Msg {
		return NavigateTo{Page: pageResult, Payload: generatedMsg{output: out}}
	}
}

func (m *FormModel) focusNext() {
	m.setFocus((m.focus + 1) % len(m.inputs))
}

func (m *FormModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func (m *FormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
