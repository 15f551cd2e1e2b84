package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/abhisek/timestables/internal/logging"
	"github.com/abhisek/timestables/internal/problemgen"
)

// Errors returned when an intent is not valid in the current state.
// The presentation layers never offer these transitions.
var (
	ErrWrongMode       = errors.New("intent not valid in this mode")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("current question not answered yet")
	ErrSessionComplete = errors.New("session already complete")
	ErrNotComplete     = errors.New("session not complete")
)

// SubmitResult is the outcome of a submitted answer.
type SubmitResult struct {
	Correct  bool
	Product  int
	Complete bool
}

// Session is the quiz state machine. It is owned by one presentation and
// is not safe for concurrent use.
type Session struct {
	state     State
	generator problemgen.Generator
	clock     clockwork.Clock
	logger    *slog.Logger
	newID     func() string
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to stamp session start and end.
func WithClock(c clockwork.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the logger for session diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithConfiguration sets the initial settings. Values are clamped and
// invalid question counts fall back to the default.
func WithConfiguration(cfg Configuration) Option {
	return func(s *Session) {
		s.state.Config.MaxFactor = ClampMaxFactor(cfg.MaxFactor)
		if cfg.QuestionCount.Valid() {
			s.state.Config.QuestionCount = cfg.QuestionCount
		}
	}
}

// WithIDFunc overrides how session IDs are produced.
func WithIDFunc(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// New creates a session in settings mode.
func New(generator problemgen.Generator, opts ...Option) *Session {
	s := &Session{
		state:     initialState(DefaultConfiguration()),
		generator: generator,
		clock:     clockwork.NewRealClock(),
		logger:    logging.Discard(),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.state.Mode }

// Question returns the current question.
func (s *Session) Question() problemgen.Question { return s.state.Question }

// Answer returns the learner's current answer.
func (s *Session) Answer() int { return s.state.Answer }

// HasAnswered reports whether the current question was submitted.
func (s *Session) HasAnswered() bool { return s.state.HasAnswered }

// Score returns the number of correct answers.
func (s *Session) Score() int { return s.state.Score }

// QuestionsAsked returns the number of questions presented so far.
func (s *Session) QuestionsAsked() int { return s.state.QuestionsAsked }

// Config returns the current configuration.
func (s *Session) Config() Configuration { return s.state.Config }

// Complete reports whether the last question has been answered.
func (s *Session) Complete() bool { return s.state.Complete }

// State returns a copy of the full state.
func (s *Session) State() State { return s.state }

// IsCorrectAnswer reports whether the current answer equals the product of
// the current question. It has no side effects.
func (s *Session) IsCorrectAnswer() bool {
	return problemgen.CheckAnswer(s.state.Answer, s.state.Question)
}

// SetMaxFactor sets the largest table, clamped to [2, 12].
func (s *Session) SetMaxFactor(v int) error {
	if s.state.Mode != ModeSettings {
		return fmt.Errorf("set max factor: %w", ErrWrongMode)
	}
	s.state.Config.MaxFactor = ClampMaxFactor(v)
	return nil
}

// SetQuestionCount sets the number of questions for the next game.
func (s *Session) SetQuestionCount(c QuestionCount) error {
	if s.state.Mode != ModeSettings {
		return fmt.Errorf("set question count: %w", ErrWrongMode)
	}
	if !c.Valid() {
		return fmt.Errorf("set question count: %w: %d", ErrInvalidQuestionCount, int(c))
	}
	s.state.Config.QuestionCount = c
	return nil
}

// StartGame switches to game mode and presents the first question.
func (s *Session) StartGame() error {
	if s.state.Mode != ModeSettings {
		return fmt.Errorf("start game: %w", ErrWrongMode)
	}

	cfg := s.state.Config
	s.state = initialState(cfg)
	s.state.Mode = ModeGame
	s.state.SessionID = s.newID()
	s.state.StartedAt = s.clock.Now()
	s.askQuestion()

	s.sessionLogger().Info("game started",
		"max_factor", cfg.MaxFactor,
		"question_count", int(cfg.QuestionCount))
	return nil
}

// UpdateAnswer records the learner's typed answer. Only the value present
// at submit time is scored.
func (s *Session) UpdateAnswer(v int) error {
	if s.state.Mode != ModeGame {
		return fmt.Errorf("update answer: %w", ErrWrongMode)
	}
	if s.state.HasAnswered {
		return fmt.Errorf("update answer: %w", ErrAlreadyAnswered)
	}
	s.state.Answer = v
	return nil
}

// SubmitAnswer scores the current answer. The session completes when the
// last configured question is submitted.
func (s *Session) SubmitAnswer() (SubmitResult, error) {
	if s.state.Mode != ModeGame {
		return SubmitResult{}, fmt.Errorf("submit answer: %w", ErrWrongMode)
	}
	if s.state.HasAnswered {
		return SubmitResult{}, fmt.Errorf("submit answer: %w", ErrAlreadyAnswered)
	}

	q := s.state.Question
	correct := problemgen.CheckAnswer(s.state.Answer, q)
	if correct {
		s.state.Score++
	}
	s.state.HasAnswered = true

	if s.state.QuestionsAsked >= int(s.state.Config.QuestionCount) {
		s.state.Complete = true
		s.state.CompletedAt = s.clock.Now()
	}

	log := s.sessionLogger()
	log.Debug("answer submitted",
		"question", q.Text(),
		"answer", s.state.Answer,
		"correct", correct,
		"score", s.state.Score,
		"questions_asked", s.state.QuestionsAsked)
	if s.state.Complete {
		log.Info("game complete",
			"score", s.state.Score,
			"question_count", int(s.state.Config.QuestionCount),
			"duration", s.state.CompletedAt.Sub(s.state.StartedAt))
	}

	return SubmitResult{
		Correct:  correct,
		Product:  q.Product(),
		Complete: s.state.Complete,
	}, nil
}

// RequestNext clears the answer and presents a new question.
func (s *Session) RequestNext() error {
	if s.state.Mode != ModeGame {
		return fmt.Errorf("request next: %w", ErrWrongMode)
	}
	if !s.state.HasAnswered {
		return fmt.Errorf("request next: %w", ErrNotAnswered)
	}
	if s.state.Complete {
		return fmt.Errorf("request next: %w", ErrSessionComplete)
	}
	s.askQuestion()
	return nil
}

// AcknowledgeCompletionAndReset returns to settings after the final score
// has been shown.
func (s *Session) AcknowledgeCompletionAndReset() error {
	if s.state.Mode != ModeGame {
		return fmt.Errorf("acknowledge completion: %w", ErrWrongMode)
	}
	if !s.state.Complete {
		return fmt.Errorf("acknowledge completion: %w", ErrNotComplete)
	}
	s.reset()
	return nil
}

// Abandon ends the current game early and returns to settings.
func (s *Session) Abandon() error {
	if s.state.Mode != ModeGame {
		return fmt.Errorf("abandon: %w", ErrWrongMode)
	}
	s.sessionLogger().Info("game abandoned",
		"score", s.state.Score,
		"questions_asked", s.state.QuestionsAsked)
	s.reset()
	return nil
}

// askQuestion replaces the current question and counts it as presented.
func (s *Session) askQuestion() {
	s.state.Answer = 0
	s.state.HasAnswered = false
	s.state.Question = s.generator.Generate(s.state.Config.MaxFactor)
	s.state.QuestionsAsked++
}

// reset clears all per-game counters. The configuration is kept.
func (s *Session) reset() {
	s.state = initialState(s.state.Config)
}

func (s *Session) sessionLogger() *slog.Logger {
	return logging.WithSession(s.logger, s.state.SessionID)
}
