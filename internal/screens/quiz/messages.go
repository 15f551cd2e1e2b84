package quiz

// startGameMsg is sent when the Start Game button is pressed.
type startGameMsg struct{}

// focusField identifies the focused control on the settings view.
type focusField int

const (
	focusMaxFactor focusField = iota
	focusQuestionCount
	focusStart
	focusFieldCount
)
