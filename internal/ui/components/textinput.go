package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/ui/theme"
)

// Feedback is the coloring state of an answer field.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// TextInput wraps bubbles/textinput as a numeric answer field.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	feedback    Feedback
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. In numeric mode, keys and pastes that are not
// all ASCII digits are dropped. Everything is dropped once feedback is shown.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.feedback != FeedbackNone {
			return t, nil
		}
		if t.NumericOnly {
			key := msg.String()
			if key == "space" {
				return t, nil
			}
			if text := msg.Key().Text; text != "" && !isDigits(text) {
				return t, nil
			}
			if len(key) == 1 && !isDigits(key) {
				return t, nil
			}
		}
	case tea.PasteMsg:
		if t.feedback != FeedbackNone {
			return t, nil
		}
		if t.NumericOnly && !isDigits(msg.Content) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// View renders the text input inside a box colored by its feedback state.
func (t TextInput) View() string {
	style := theme.AnswerPending
	switch t.feedback {
	case FeedbackCorrect:
		style = theme.AnswerCorrect
	case FeedbackWrong:
		style = theme.AnswerWrong
	}
	if t.MaxWidth > 0 {
		style = style.Width(t.MaxWidth + 6)
	}
	return style.Render(t.Model.View())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue returns the input value as an answer. Empty input is zero.
func (t TextInput) NumericValue() (int, error) {
	return problemgen.ParseAnswer(t.Model.Value())
}

// SetFeedback colors the field. FeedbackNone makes it editable again.
func (t *TextInput) SetFeedback(f Feedback) {
	t.feedback = f
}

// Feedback returns the current coloring state.
func (t TextInput) Feedback() Feedback {
	return t.feedback
}
