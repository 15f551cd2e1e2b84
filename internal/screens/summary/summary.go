package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/router"
	"github.com/abhisek/timestables/internal/screen"
	"github.com/abhisek/timestables/internal/session"
	"github.com/abhisek/timestables/internal/ui/components"
	"github.com/abhisek/timestables/internal/ui/layout"
	"github.com/abhisek/timestables/internal/ui/theme"
)

// AcknowledgedMsg is delivered to the screen underneath once the learner
// has seen the final score.
type AcknowledgedMsg struct{}

// SummaryScreen displays the final score of a completed session.
type SummaryScreen struct {
	summary session.SessionSummary
	last    session.SubmitResult
	button  components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. last is the result of the final answer.
func New(summary session.SessionSummary, last session.SubmitResult) *SummaryScreen {
	return &SummaryScreen{
		summary: summary,
		last:    last,
		button: components.NewButton("Back to settings", true, func() tea.Cmd {
			return func() tea.Msg {
				return router.PopScreenMsg{Then: AcknowledgedMsg{}}
			}
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Well done!"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to settings"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, s.button.OnPress()
	}
	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(st lipgloss.Style) lipgloss.Style {
		return st.Width(width).Align(lipgloss.Center)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Result of the final answer.
	if s.last.Correct {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true)).
			Render("Correct!"))
	} else {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true)).
			Render(fmt.Sprintf("Not quite, the answer was %d", s.last.Product)))
	}
	b.WriteString("\n\n")

	b.WriteString(center(theme.Title).Render("Well done!"))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text)).
		Render(fmt.Sprintf("Your final score is %d", sum.Score)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	stats := fmt.Sprintf("Questions: %d     Accuracy: %.0f%%     Time: %d:%02d",
		sum.QuestionCount, sum.Accuracy*100, mins, secs)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim)).Render(stats))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.button.View()))

	return b.String()
}
