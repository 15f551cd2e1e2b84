// Package drill runs a quiz session over plain text streams, one answer
// per line.
package drill

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/timestables/internal/logging"
	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/session"
)

// Runner drives one session from in to out.
type Runner struct {
	session *session.Session
	logger  *slog.Logger
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a Runner. A nil logger discards.
func New(sess *session.Session, in io.Reader, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{
		session: sess,
		logger:  logger,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays a full game. If the input ends early the game is abandoned and
// Run returns nil.
func (r *Runner) Run() error {
	if err := r.session.StartGame(); err != nil {
		return fmt.Errorf("drill: %w", err)
	}

	total := int(r.session.Config().QuestionCount)
	for {
		q := r.session.Question()
		prompt := fmt.Sprintf("[%d/%d] %s = ", r.session.QuestionsAsked(), total, q.Text())

		answer, err := r.readAnswer(prompt)
		if errors.Is(err, io.EOF) {
			r.printf("\nStopped after %d of %d questions.\n", r.session.QuestionsAsked()-1, total)
			return r.session.Abandon()
		}
		if err != nil {
			return fmt.Errorf("drill: read answer: %w", err)
		}

		if err := r.session.UpdateAnswer(answer); err != nil {
			return fmt.Errorf("drill: %w", err)
		}
		res, err := r.session.SubmitAnswer()
		if err != nil {
			return fmt.Errorf("drill: %w", err)
		}

		if res.Correct {
			r.printf("Correct!\n")
		} else {
			r.printf("Not quite, %s = %d\n", q.Text(), res.Product)
		}

		if res.Complete {
			r.printf("\nWell done! Your final score is %d/%d\n", r.session.Score(), total)
			return r.session.AcknowledgeCompletionAndReset()
		}
		if err := r.session.RequestNext(); err != nil {
			return fmt.Errorf("drill: %w", err)
		}
	}
}

// readAnswer prompts until a numeric line is read.
func (r *Runner) readAnswer(prompt string) (int, error) {
	for {
		r.printf("%s", prompt)
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		n, err := problemgen.ParseAnswer(r.in.Text())
		if err == nil {
			return n, nil
		}
		r.logger.Debug("rejected drill input", "input", r.in.Text())
		r.printf("Please type a number.\n")
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
