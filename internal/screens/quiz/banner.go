package quiz

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/ui/theme"
)

const (
	bannerWide    = "T I M E S   T A B L E S"
	bannerCompact = "TIMES TABLES"
)

// renderBanner returns the settings banner, spaced out when there is room.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerWide)
}
