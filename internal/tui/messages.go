package tui

// NavigateTo switches RootModel to another page. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// generatedMsg carries a rendered override from the form to the result page.
type generatedMsg struct {
	output Output
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// finishedMsg ends the program with the accepted override.
type finishedMsg struct {
	output Output
}
