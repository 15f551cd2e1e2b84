package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all cards so they
// visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 50 {
		w = 50
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Section renders a titled, rounded card at the given content width.
func Section(title, content string, cw int) string {
	body := content
	if title != "" {
		body = theme.SectionTitle.Render(title) + "\n\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(body)
}
