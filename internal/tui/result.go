package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long the clipboard status line stays visible.
const statusTTL = 2 * time.Second

// ResultModel shows a rendered override and copies its minified form to
// the clipboard as soon as it arrives.
type ResultModel struct {
	copyText func(string) error

	output Output
	ready  bool
	status string
	errMsg string
}

// NewResultModel returns a ResultModel writing to the clipboard through
// copyText.
func NewResultModel(copyText func(string) error) *ResultModel {
	return &ResultModel{copyText: copyText}
}

// Init implements [tea.Model].
func (m *ResultModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.output = msg.output
		m.ready = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdCopy()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.status = ""
			return m, nil
		}
		m.errMsg = ""
		m.status = "Minified JSON copied to the clipboard"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageForm} }
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy()
		case key.Matches(msg, keys.enter):
			return m, func() tea.Msg { return finishedMsg{output: m.output} }
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *ResultModel) View() string {
	if !m.ready {
		return renderPage("GENERATED OVERRIDE", "", "esc: back")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Minified (SITE_CLINIC_CONFIG)"))
	b.WriteString("\n")
	b.WriteString(jsonBoxStyle.Render(m.output.Minified))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Formatted (SITE_CLINIC_CONFIG_FILE)"))
	b.WriteString("\n")
	b.WriteString(jsonBoxStyle.Render(m.output.Indented))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("GENERATED OVERRIDE", b.String(), "esc: edit │ c: copy again │ enter: finish")
}

func (m *ResultModel) cmdCopy() tea.Cmd {
	text := m.output.Minified
	copyText := m.copyText
	if copyText == nil {
		return nil
	}

	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
