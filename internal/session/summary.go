package session

import "time"

// SessionSummary holds the data displayed when a session completes.
type SessionSummary struct {
	Score         int
	QuestionCount int
	Accuracy      float64
	Duration      time.Duration
}

// Summary builds the end-of-session summary from the current state.
// Duration runs to CompletedAt, or to now for a session still in progress.
func (s *Session) Summary() SessionSummary {
	st := s.state

	// The current question only counts once it has been answered.
	answered := st.QuestionsAsked
	if !st.HasAnswered && answered > 0 {
		answered--
	}
	var accuracy float64
	if answered > 0 {
		accuracy = float64(st.Score) / float64(answered)
	}

	var duration time.Duration
	if !st.StartedAt.IsZero() {
		end := st.CompletedAt
		if end.IsZero() {
			end = s.clock.Now()
		}
		duration = end.Sub(st.StartedAt)
	}

	return SessionSummary{
		Score:         st.Score,
		QuestionCount: st.QuestionsAsked,
		Accuracy:      accuracy,
		Duration:      duration,
	}
}
