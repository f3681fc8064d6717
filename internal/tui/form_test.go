package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormModel_FieldsMatchAnswers(t *testing.T) {
	var a Answers
	assert.Len(t, formFields, len(a.fields()))
}

func TestFormModel_FocusNavigation(t *testing.T) {
	m := NewFormModel(nil)
	require.Equal(t, 0, m.focus)
	assert.True(t, m.inputs[0].Focused())

	m.Update(keyPress(tea.KeyTab))
	assert.Equal(t, 1, m.focus)
	assert.False(t, m.inputs[0].Focused())
	assert.True(t, m.inputs[1].Focused())

	m.Update(keyPress(tea.KeyShiftTab))
	m.Update(keyPress(tea.KeyShiftTab))
	assert.Equal(t, len(formFields)-1, m.focus)

	m.Update(keyPress(tea.KeyDown))
	assert.Equal(t, 0, m.focus)
}

func TestFormModel_TypingFillsFocusedField(t *testing.T) {
	m := NewFormModel(nil)

	m.Update(runes("Harbor"))
	m.Update(keyPress(tea.KeyTab))
	m.Update(runes("Sea care"))

	a := m.Answers()
	assert.Equal(t, "Harbor", a.ClinicName)
	assert.Equal(t, "Sea care", a.Tagline)
}

func TestFormModel_SubmitNavigatesToResult(t *testing.T) {
	prefill := fullAnswers()
	m := NewFormModel(&prefill)

	_, cmd := m.Update(keyPress(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageResult, nav.Page)

	generated, ok := nav.Payload.(generatedMsg)
	require.True(t, ok)
	want, err := Generate(prefill)
	require.NoError(t, err)
	assert.Equal(t, want, generated.output)
}

func TestFormModel_EnterAdvancesThenSubmits(t *testing.T) {
	m := NewFormModel(&Answers{ClinicName: "Harbor"})

	for i := 0; i < len(formFields)-1; i++ {
		_, cmd := m.Update(keyPress(tea.KeyEnter))
		assert.Nil(t, cmd)
	}
	assert.Equal(t, len(formFields)-1, m.focus)

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, NavigateTo{}, cmd())
}

func TestFormModel_MissingNameShowsError(t *testing.T) {
	m := NewFormModel(&Answers{Phone: "555"})
	m.setFocus(3)

	_, cmd := m.Update(keyPress(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.focus)
	assert.Contains(t, m.View(), ErrClinicNameRequired.Error())
}

func TestFormModel_ViewListsSections(t *testing.T) {
	view := NewFormModel(nil).View()
	for _, s := range []string{"Clinic", "Contact", "Hours", "Social (optional)", "Name *"} {
		assert.Contains(t, view, s)
	}
}
