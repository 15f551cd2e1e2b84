package problemgen

import "math/rand/v2"

// Generator produces multiplication questions.
type Generator interface {
	// Generate returns a fresh question whose left operand is bounded by
	// maxFactor. Each call is independent of the previous ones.
	Generate(maxFactor int) Question
}

// Random draws operands uniformly from their ranges.
type Random struct {
	rng *rand.Rand
}

var _ Generator = (*Random)(nil)

// NewRandom creates a generator seeded from the runtime's entropy source.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a generator that yields the same sequence for the same seed.
func NewSeeded(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate draws Left from [MinFactor, maxFactor] and Right from
// [MinFactor, RightMax]. maxFactor outside [MinFactor, MaxTable] is clamped.
func (r *Random) Generate(maxFactor int) Question {
	maxFactor = ClampFactor(maxFactor)
	return Question{
		Left:  MinFactor + r.rng.IntN(maxFactor-MinFactor+1),
		Right: MinFactor + r.rng.IntN(RightMax-MinFactor+1),
	}
}

// ClampFactor forces v into [MinFactor, MaxTable].
func ClampFactor(v int) int {
	if v < MinFactor {
		return MinFactor
	}
	if v > MaxTable {
		return MaxTable
	}
	return v
}
