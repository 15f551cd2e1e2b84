package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/ui/theme"
)

// Stepper is a bounded integer control. Its value never leaves [Min, Max].
type Stepper struct {
	Label   string
	Value   int
	Min     int
	Max     int
	Focused bool
}

// NewStepper creates a stepper with value clamped into [min, max].
func NewStepper(label string, value, min, max int) Stepper {
	s := Stepper{Label: label, Min: min, Max: max}
	s.Value = s.clamp(value)
	return s
}

// Update handles left/right (and -/+) keys when focused.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "-":
		s.Value = s.clamp(s.Value - 1)
	case "right", "l", "+", "=":
		s.Value = s.clamp(s.Value + 1)
	}
	return s, nil
}

// View renders the label followed by "◀ 7 ▶".
func (s Stepper) View() string {
	dec := lipgloss.NewStyle().Foreground(theme.TextDim).Render("◀")
	inc := lipgloss.NewStyle().Foreground(theme.TextDim).Render("▶")
	if s.Value > s.Min && s.Focused {
		dec = lipgloss.NewStyle().Foreground(theme.Primary).Render("◀")
	}
	if s.Value < s.Max && s.Focused {
		inc = lipgloss.NewStyle().Foreground(theme.Primary).Render("▶")
	}

	valueStyle := theme.Unselected
	if s.Focused {
		valueStyle = theme.Selected
	}
	value := valueStyle.Width(4).Align(lipgloss.Center).Render(strconv.Itoa(s.Value))

	label := ""
	if s.Label != "" {
		label = theme.Body.Render(s.Label) + "   "
	}
	return label + dec + value + inc
}

func (s Stepper) clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}
