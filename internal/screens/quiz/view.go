package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/ui/components"
	"github.com/abhisek/timestables/internal/ui/theme"
)

func (s *QuizScreen) renderSettings(width, height int) string {
	cw := components.ContentWidth(width)

	limit := components.Section("Select Multiplication Limit", s.maxFactor.View(), cw)
	amount := components.Section("Select Question Amount", s.count.View(), cw)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderBanner(width)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, limit))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, amount))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.start.View()))
	return b.String()
}

func (s *QuizScreen) renderGame(width, height int) string {
	q := s.session.Question()
	cfg := s.session.Config()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(s.session.QuestionsAsked(), int(cfg.QuestionCount), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	question := theme.Title.Render(fmt.Sprintf("%d x %d", q.Left, q.Right))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if s.session.HasAnswered() {
		var line string
		if s.session.IsCorrectAnswer() {
			line = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render(fmt.Sprintf("Not quite, %s = %d", q.Text(), q.Product()))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n\n")
	} else {
		hint := theme.Hint.Render("Type your answer and press Enter")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n\n")
	}

	score := theme.Body.Render(fmt.Sprintf("Score: %d", s.session.Score()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, score))

	return b.String()
}
