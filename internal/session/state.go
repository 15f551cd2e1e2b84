package session

import (
	"time"

	"github.com/abhisek/timestables/internal/problemgen"
)

// Mode is the top-level mode of the app.
type Mode string

const (
	ModeSettings Mode = "settings" // Choosing table size and question count
	ModeGame     Mode = "game"     // Answering questions
)

// State is the full, serializable state of a quiz session.
type State struct {
	// SessionID identifies the current game. Empty in settings mode.
	SessionID string `json:"session_id,omitempty"`

	// Mode is settings or game.
	Mode Mode `json:"mode"`

	// Config is the configuration the session runs with.
	Config Configuration `json:"config"`

	// Question is the question currently displayed.
	Question problemgen.Question `json:"question"`

	// Answer is the learner's current typed answer.
	Answer int `json:"answer"`

	// HasAnswered is true once the current question was submitted.
	HasAnswered bool `json:"has_answered"`

	// Score is the count of correct answers so far.
	Score int `json:"score"`

	// QuestionsAsked is the count of questions presented so far,
	// including the current one.
	QuestionsAsked int `json:"questions_asked"`

	// Complete is true once the last question has been answered.
	Complete bool `json:"complete"`

	// StartedAt is when the current game started.
	StartedAt time.Time `json:"started_at,omitzero"`

	// CompletedAt is when the last question was answered.
	CompletedAt time.Time `json:"completed_at,omitzero"`
}

// initialState returns the state a fresh app starts in.
func initialState(cfg Configuration) State {
	return State{
		Mode:     ModeSettings,
		Config:   cfg,
		Question: problemgen.InitialQuestion(),
	}
}
