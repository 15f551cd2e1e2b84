package problemgen

import "fmt"

// Operand bounds for multiplication questions.
const (
	// MinFactor is the smallest operand on either side.
	MinFactor = 2

	// MaxTable is the largest table the left operand can be drawn from.
	MaxTable = 12

	// RightMax is the largest right operand. It does not follow the
	// configured table size.
	RightMax = 11
)

// Question represents a single multiplication question.
type Question struct {
	// Left is drawn from [MinFactor, maxFactor].
	Left int `json:"left"`

	// Right is drawn from [MinFactor, RightMax].
	Right int `json:"right"`
}

// Product returns the correct answer.
func (q Question) Product() int {
	return q.Left * q.Right
}

// Text renders the question the way it is shown to the learner, e.g. "7 x 8".
func (q Question) Text() string {
	return fmt.Sprintf("%d x %d", q.Left, q.Right)
}

// InitialQuestion is the placeholder question held before the first game starts.
func InitialQuestion() Question {
	return Question{Left: MinFactor, Right: MinFactor}
}
