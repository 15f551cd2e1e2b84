package quiz

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timestables/internal/logging"
	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/router"
	"github.com/abhisek/timestables/internal/screen"
	"github.com/abhisek/timestables/internal/screens/summary"
	"github.com/abhisek/timestables/internal/session"
	"github.com/abhisek/timestables/internal/ui/components"
	"github.com/abhisek/timestables/internal/ui/layout"
)

const answerWidth = 4

// QuizScreen renders the settings form or the question view, depending on
// the session mode.
type QuizScreen struct {
	session *session.Session
	logger  *slog.Logger

	// Settings view.
	maxFactor components.Stepper
	count     components.Picker
	start     components.Button
	focus     focusField

	// Game view.
	input components.TextInput
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving sess.
func New(sess *session.Session, logger *slog.Logger) *QuizScreen {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &QuizScreen{
		session: sess,
		logger:  logger,
		start: components.NewButton("Start Game", false, func() tea.Cmd {
			return func() tea.Msg { return startGameMsg{} }
		}),
		input: components.NewTextInput("?", true, answerWidth),
	}
	s.syncSettings()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.session.Mode() == session.ModeGame {
		return "Question Time"
	}
	return "Settings"
}

func (s *QuizScreen) Status() string {
	if s.session.Mode() == session.ModeGame {
		return fmt.Sprintf("Score: %d  ", s.session.Score())
	}
	return ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Mode() == session.ModeSettings {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "←→", Description: "Change"},
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if s.session.HasAnswered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Settings"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Settings"},
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.session.Mode() == session.ModeGame {
		return s.renderGame(width, height)
	}
	return s.renderSettings(width, height)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startGameMsg:
		return s.handleStart()

	case summary.AcknowledgedMsg:
		return s.handleAcknowledged()

	case tea.KeyMsg:
		if s.session.Mode() == session.ModeGame {
			return s.handleGameKey(msg)
		}
		return s.handleSettingsKey(msg)
	}

	if s.session.Mode() == session.ModeGame && !s.session.HasAnswered() {
		return s, s.updateInput(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleSettingsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "shift+tab":
		s.setFocus((s.focus + focusFieldCount - 1) % focusFieldCount)
		return s, nil
	case "down", "j", "tab":
		s.setFocus((s.focus + 1) % focusFieldCount)
		return s, nil
	case "enter":
		// Enter starts the game from any field, like the form's button.
		return s.handleStart()
	}

	switch s.focus {
	case focusMaxFactor:
		s.maxFactor, _ = s.maxFactor.Update(msg)
		if err := s.session.SetMaxFactor(s.maxFactor.Value); err != nil {
			s.logIntentError(err)
		}
	case focusQuestionCount:
		s.count, _ = s.count.Update(msg)
		if err := s.session.SetQuestionCount(session.QuestionCount(s.count.Value())); err != nil {
			s.logIntentError(err)
		}
	case focusStart:
		var cmd tea.Cmd
		s.start, cmd = s.start.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleGameKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if err := s.session.Abandon(); err != nil {
			s.logIntentError(err)
		}
		s.syncSettings()
		return s, nil
	case "enter":
		if s.session.HasAnswered() {
			return s.handleNext()
		}
		return s.handleSubmit()
	}

	if s.session.HasAnswered() {
		return s, nil
	}

	return s, s.updateInput(msg)
}

// updateInput forwards msg to the answer field and records whatever the
// field now holds as the session's answer.
func (s *QuizScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	n, err := s.input.NumericValue()
	if err != nil {
		s.logger.Debug("answer field not numeric", "value", s.input.Value())
		return cmd
	}
	if n != s.session.Answer() {
		if err := s.session.UpdateAnswer(n); err != nil {
			s.logIntentError(err)
		}
	}
	return cmd
}

func (s *QuizScreen) handleStart() (screen.Screen, tea.Cmd) {
	if s.session.Mode() != session.ModeSettings {
		return s, nil
	}
	if err := s.session.StartGame(); err != nil {
		s.logIntentError(err)
		return s, nil
	}
	return s, s.resetInput()
}

func (s *QuizScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	res, err := s.session.SubmitAnswer()
	if err != nil {
		s.logIntentError(err)
		return s, nil
	}

	if s.session.IsCorrectAnswer() {
		s.input.SetFeedback(components.FeedbackCorrect)
	} else {
		s.input.SetFeedback(components.FeedbackWrong)
	}

	if !res.Complete {
		return s, nil
	}
	sum := s.session.Summary()
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, res)}
	}
}

func (s *QuizScreen) handleNext() (screen.Screen, tea.Cmd) {
	if err := s.session.RequestNext(); err != nil {
		s.logIntentError(err)
		return s, nil
	}
	return s, s.resetInput()
}

func (s *QuizScreen) handleAcknowledged() (screen.Screen, tea.Cmd) {
	if err := s.session.AcknowledgeCompletionAndReset(); err != nil {
		s.logIntentError(err)
	}
	s.syncSettings()
	return s, nil
}

// resetInput replaces the answer field so it shows the cleared answer.
func (s *QuizScreen) resetInput() tea.Cmd {
	s.input = components.NewTextInput("?", true, answerWidth)
	s.input.Model.SetValue(problemgen.FormatAnswer(s.session.Answer()))
	return s.input.Init()
}

// syncSettings rebuilds the settings controls from the session configuration.
func (s *QuizScreen) syncSettings() {
	cfg := s.session.Config()
	s.maxFactor = components.NewStepper("", cfg.MaxFactor, problemgen.MinFactor, problemgen.MaxTable)

	options := session.QuestionCountOptions()
	values := make([]int, len(options))
	for i, o := range options {
		values[i] = int(o)
	}
	s.count = components.NewPicker(values, int(cfg.QuestionCount))
	s.setFocus(focusMaxFactor)
}

func (s *QuizScreen) setFocus(f focusField) {
	s.focus = f
	s.maxFactor.Focused = f == focusMaxFactor
	s.count.Focused = f == focusQuestionCount
	s.start.Active = f == focusStart
}

func (s *QuizScreen) logIntentError(err error) {
	logging.WithError(s.logger, err).Warn("intent rejected", "mode", string(s.session.Mode()))
}
