package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/timestables/internal/problemgen"
)

// ErrInvalidQuestionCount is returned for a question count outside the
// enumerated options.
var ErrInvalidQuestionCount = errors.New("invalid question count")

// QuestionCount is the number of questions in one session.
type QuestionCount int

// The selectable question counts.
const (
	QuestionsOne    QuestionCount = 1
	QuestionsFive   QuestionCount = 5
	QuestionsTen    QuestionCount = 10
	QuestionsTwenty QuestionCount = 20
)

// QuestionCountOptions returns the selectable counts in display order.
func QuestionCountOptions() []QuestionCount {
	return []QuestionCount{QuestionsOne, QuestionsFive, QuestionsTen, QuestionsTwenty}
}

// Valid reports whether c is one of the enumerated options.
func (c QuestionCount) Valid() bool {
	switch c {
	case QuestionsOne, QuestionsFive, QuestionsTen, QuestionsTwenty:
		return true
	}
	return false
}

// ParseQuestionCount converts a raw integer, e.g. from a flag, into a
// QuestionCount.
func ParseQuestionCount(n int) (QuestionCount, error) {
	c := QuestionCount(n)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d (choose one of 1, 5, 10, 20)", ErrInvalidQuestionCount, n)
	}
	return c, nil
}

// Configuration holds the user's choices for the next session.
type Configuration struct {
	MaxFactor     int           `json:"max_factor"`
	QuestionCount QuestionCount `json:"question_count"`
}

// DefaultConfiguration returns the settings shown on first launch.
func DefaultConfiguration() Configuration {
	return Configuration{
		MaxFactor:     problemgen.MinFactor,
		QuestionCount: QuestionsOne,
	}
}

// ClampMaxFactor forces v into the selectable table range [2, 12].
func ClampMaxFactor(v int) int {
	return problemgen.ClampFactor(v)
}
