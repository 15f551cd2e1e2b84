package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timestables/internal/problemgen"
)

// sequenceGenerator returns questions from a fixed list, cycling, and
// records the maxFactor of every call.
type sequenceGenerator struct {
	questions []problemgen.Question
	calls     []int
}

func (g *sequenceGenerator) Generate(maxFactor int) problemgen.Question {
	q := g.questions[len(g.calls)%len(g.questions)]
	g.calls = append(g.calls, maxFactor)
	return q
}

func newTestSession(t *testing.T, gen problemgen.Generator, opts ...Option) (*Session, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 19, 9, 0, 0, 0, time.UTC))
	ids := 0
	base := []Option{
		WithClock(clock),
		WithIDFunc(func() string {
			ids++
			return "session-" + string(rune('0'+ids))
		}),
	}
	return New(gen, append(base, opts...)...), clock
}

func fixedGen(qs ...problemgen.Question) *sequenceGenerator {
	return &sequenceGenerator{questions: qs}
}

func TestNew_StartsInSettings(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 3, Right: 4}))

	assert.Equal(t, ModeSettings, s.Mode())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.QuestionsAsked())
	assert.Equal(t, 0, s.Answer())
	assert.False(t, s.HasAnswered())
	assert.False(t, s.Complete())
	assert.Equal(t, DefaultConfiguration(), s.Config())
	assert.Equal(t, problemgen.InitialQuestion(), s.Question())
}

func TestWithConfiguration_ClampsAndValidates(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 2, Right: 2}),
		WithConfiguration(Configuration{MaxFactor: 40, QuestionCount: 7}))

	assert.Equal(t, 12, s.Config().MaxFactor)
	assert.Equal(t, QuestionsOne, s.Config().QuestionCount)
}

func TestSetMaxFactor_Clamps(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 2, Right: 2}))

	require.NoError(t, s.SetMaxFactor(1))
	assert.Equal(t, 2, s.Config().MaxFactor)

	require.NoError(t, s.SetMaxFactor(13))
	assert.Equal(t, 12, s.Config().MaxFactor)

	require.NoError(t, s.SetMaxFactor(7))
	assert.Equal(t, 7, s.Config().MaxFactor)
}

func TestSetQuestionCount(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 2, Right: 2}))

	for _, c := range QuestionCountOptions() {
		require.NoError(t, s.SetQuestionCount(c))
		assert.Equal(t, c, s.Config().QuestionCount)
	}

	err := s.SetQuestionCount(QuestionCount(3))
	assert.ErrorIs(t, err, ErrInvalidQuestionCount)
	assert.Equal(t, QuestionsTwenty, s.Config().QuestionCount)
}

func TestConfigImmutableDuringGame(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 2, Right: 2}))
	require.NoError(t, s.SetMaxFactor(5))
	require.NoError(t, s.StartGame())

	assert.ErrorIs(t, s.SetMaxFactor(9), ErrWrongMode)
	assert.ErrorIs(t, s.SetQuestionCount(QuestionsTen), ErrWrongMode)
	assert.Equal(t, 5, s.Config().MaxFactor)
	assert.Equal(t, QuestionsOne, s.Config().QuestionCount)
}

func TestStartGame(t *testing.T) {
	gen := fixedGen(problemgen.Question{Left: 6, Right: 9})
	s, clock := newTestSession(t, gen)
	require.NoError(t, s.SetMaxFactor(8))

	require.NoError(t, s.StartGame())

	assert.Equal(t, ModeGame, s.Mode())
	assert.Equal(t, problemgen.Question{Left: 6, Right: 9}, s.Question())
	assert.Equal(t, 1, s.QuestionsAsked())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, []int{8}, gen.calls)

	st := s.State()
	assert.Equal(t, "session-1", st.SessionID)
	assert.Equal(t, clock.Now(), st.StartedAt)

	assert.ErrorIs(t, s.StartGame(), ErrWrongMode)
}

func TestIntentsRejectedInSettings(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 2, Right: 2}))

	assert.ErrorIs(t, s.UpdateAnswer(4), ErrWrongMode)
	_, err := s.SubmitAnswer()
	assert.ErrorIs(t, err, ErrWrongMode)
	assert.ErrorIs(t, s.RequestNext(), ErrWrongMode)
	assert.ErrorIs(t, s.AcknowledgeCompletionAndReset(), ErrWrongMode)
	assert.ErrorIs(t, s.Abandon(), ErrWrongMode)
	assert.Equal(t, 0, s.Answer())
}

func TestSubmitAnswer_CorrectIncrementsScoreByOne(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 7, Right: 8}))
	require.NoError(t, s.SetQuestionCount(QuestionsFive))
	require.NoError(t, s.StartGame())

	require.NoError(t, s.UpdateAnswer(56))
	res, err := s.SubmitAnswer()
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.Equal(t, 56, res.Product)
	assert.False(t, res.Complete)
	assert.Equal(t, 1, s.Score())
	assert.True(t, s.HasAnswered())
	assert.True(t, s.IsCorrectAnswer())
}

func TestSubmitAnswer_WrongLeavesScore(t *testing.T) {
	for _, answer := range []int{0, 1, 55, 57, 78, -56} {
		s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 7, Right: 8}))
		require.NoError(t, s.SetQuestionCount(QuestionsFive))
		require.NoError(t, s.StartGame())

		require.NoError(t, s.UpdateAnswer(answer))
		res, err := s.SubmitAnswer()
		require.NoError(t, err)

		assert.False(t, res.Correct, "answer %d", answer)
		assert.Equal(t, 0, s.Score(), "answer %d", answer)
		assert.False(t, s.IsCorrectAnswer(), "answer %d", answer)
	}
}

func TestSubmitAnswer_OnlyOncePerQuestion(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 3, Right: 3}))
	require.NoError(t, s.SetQuestionCount(QuestionsFive))
	require.NoError(t, s.StartGame())
	require.NoError(t, s.UpdateAnswer(9))

	_, err := s.SubmitAnswer()
	require.NoError(t, err)
	_, err = s.SubmitAnswer()
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.ErrorIs(t, s.UpdateAnswer(10), ErrAlreadyAnswered)

	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 9, s.Answer())
}

func TestUpdateAnswer_OnlyFinalValueScored(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 4, Right: 5}))
	require.NoError(t, s.StartGame())

	for _, v := range []int{2, 20, 200, 2} {
		require.NoError(t, s.UpdateAnswer(v))
	}
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.HasAnswered())

	require.NoError(t, s.UpdateAnswer(20))
	res, err := s.SubmitAnswer()
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 1, s.Score())
}

func TestRequestNext(t *testing.T) {
	gen := fixedGen(
		problemgen.Question{Left: 2, Right: 3},
		problemgen.Question{Left: 5, Right: 7},
	)
	s, _ := newTestSession(t, gen)
	require.NoError(t, s.SetQuestionCount(QuestionsFive))
	require.NoError(t, s.StartGame())

	assert.ErrorIs(t, s.RequestNext(), ErrNotAnswered)

	require.NoError(t, s.UpdateAnswer(6))
	_, err := s.SubmitAnswer()
	require.NoError(t, err)

	require.NoError(t, s.RequestNext())
	assert.Equal(t, problemgen.Question{Left: 5, Right: 7}, s.Question())
	assert.Equal(t, 0, s.Answer())
	assert.False(t, s.HasAnswered())
	assert.Equal(t, 2, s.QuestionsAsked())
	assert.Equal(t, 1, s.Score())
}

func TestScenario_SingleQuestionTableOfTwo(t *testing.T) {
	s, _ := newTestSession(t, problemgen.NewSeeded(11))
	require.NoError(t, s.SetMaxFactor(2))
	require.NoError(t, s.SetQuestionCount(QuestionsOne))
	require.NoError(t, s.StartGame())

	q := s.Question()
	require.Equal(t, 2, q.Left)
	require.GreaterOrEqual(t, q.Right, 2)
	require.LessOrEqual(t, q.Right, 11)

	require.NoError(t, s.UpdateAnswer(2*q.Right))
	res, err := s.SubmitAnswer()
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.True(t, res.Complete)
	assert.Equal(t, 1, s.Score())
	assert.True(t, s.Complete())
	assert.ErrorIs(t, s.RequestNext(), ErrSessionComplete)
}

func TestScenario_CompletionFiresExactlyOnce(t *testing.T) {
	s, _ := newTestSession(t, problemgen.NewSeeded(99))
	require.NoError(t, s.SetMaxFactor(12))
	require.NoError(t, s.SetQuestionCount(QuestionsFive))
	require.NoError(t, s.StartGame())

	completions := 0
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.UpdateAnswer(s.Question().Product()))
		res, err := s.SubmitAnswer()
		require.NoError(t, err)
		if res.Complete {
			completions++
			assert.Equal(t, 5, i, "completion fired early")
		}
		if i < 5 {
			require.NoError(t, s.RequestNext())
		}
	}

	assert.Equal(t, 1, completions)
	assert.Equal(t, 5, s.Score())
	assert.Equal(t, 5, s.QuestionsAsked())
	assert.ErrorIs(t, s.RequestNext(), ErrSessionComplete)
	_, err := s.SubmitAnswer()
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
}

func TestScoreNeverExceedsQuestionsAsked(t *testing.T) {
	gen := problemgen.NewSeeded(5)
	for _, count := range QuestionCountOptions() {
		s, _ := newTestSession(t, gen)
		require.NoError(t, s.SetMaxFactor(9))
		require.NoError(t, s.SetQuestionCount(count))
		require.NoError(t, s.StartGame())

		for i := 0; ; i++ {
			answer := s.Question().Product()
			if i%3 == 0 {
				answer++
			}
			require.NoError(t, s.UpdateAnswer(answer))
			res, err := s.SubmitAnswer()
			require.NoError(t, err)

			// Retrying the submit must not add points.
			_, _ = s.SubmitAnswer()
			assert.LessOrEqual(t, s.Score(), s.QuestionsAsked())
			if res.Complete {
				break
			}
			require.NoError(t, s.RequestNext())
		}
		assert.Equal(t, int(count), s.QuestionsAsked())
	}
}

func TestAcknowledgeCompletionAndReset(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 3, Right: 4}))
	require.NoError(t, s.SetMaxFactor(6))
	require.NoError(t, s.StartGame())

	assert.ErrorIs(t, s.AcknowledgeCompletionAndReset(), ErrNotComplete)

	require.NoError(t, s.UpdateAnswer(12))
	_, err := s.SubmitAnswer()
	require.NoError(t, err)
	require.True(t, s.Complete())

	require.NoError(t, s.AcknowledgeCompletionAndReset())

	assert.Equal(t, ModeSettings, s.Mode())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.QuestionsAsked())
	assert.Equal(t, 0, s.Answer())
	assert.False(t, s.HasAnswered())
	assert.False(t, s.Complete())
	assert.Empty(t, s.State().SessionID)
	assert.Equal(t, 6, s.Config().MaxFactor, "configuration survives a reset")
}

func TestAbandon(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 3, Right: 4}))
	require.NoError(t, s.SetQuestionCount(QuestionsTen))
	require.NoError(t, s.StartGame())
	require.NoError(t, s.UpdateAnswer(12))
	_, err := s.SubmitAnswer()
	require.NoError(t, err)

	require.NoError(t, s.Abandon())

	assert.Equal(t, ModeSettings, s.Mode())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.QuestionsAsked())

	require.NoError(t, s.StartGame())
	assert.Equal(t, "session-2", s.State().SessionID)
	assert.Equal(t, 1, s.QuestionsAsked())
}

func TestIsCorrectAnswer_NoSideEffects(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 3, Right: 4}))
	require.NoError(t, s.SetQuestionCount(QuestionsFive))
	require.NoError(t, s.StartGame())
	require.NoError(t, s.UpdateAnswer(12))

	before := s.State()
	for i := 0; i < 10; i++ {
		assert.True(t, s.IsCorrectAnswer())
	}
	assert.Equal(t, before, s.State())
}

func TestState_JSONRoundTrip(t *testing.T) {
	s, _ := newTestSession(t, fixedGen(problemgen.Question{Left: 9, Right: 7}))
	require.NoError(t, s.SetMaxFactor(9))
	require.NoError(t, s.StartGame())
	require.NoError(t, s.UpdateAnswer(63))

	b, err := json.Marshal(s.State())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"mode":"game"`)
	assert.Contains(t, string(b), `"question":{"left":9,"right":7}`)

	var got State
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, s.State().Question, got.Question)
	assert.Equal(t, s.State().Config, got.Config)
	assert.True(t, s.State().StartedAt.Equal(got.StartedAt))
}
