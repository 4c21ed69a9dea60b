// Package session runs the question/answer loop over a processed batch.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thywilljoshua/paperqa/internal/ai"
	"github.com/thywilljoshua/paperqa/internal/logging"
	"github.com/thywilljoshua/paperqa/internal/paper"
)

const (
	QuestionPrompt = "Ask a question or type ex to exit: "
	exitWord       = "ex"
)

// ErrUserExit reports that the user typed the exit word.
var ErrUserExit = errors.New("user exit")

// Answerer answers a question against a context string.
type Answerer interface {
	Answer(ctx context.Context, question, content string) (string, error)
}

// Loop reads questions and writes answers. Every question is answered
// against the full combined context of the batch; nothing is kept between
// questions.
type Loop struct {
	in       *bufio.Reader
	out      io.Writer
	answerer Answerer
	logger   logging.Logger
}

// NewLoop reads from in directly when it is already a *bufio.Reader, so
// input buffered by an earlier prompt is not lost.
func NewLoop(in io.Reader, out io.Writer, answerer Answerer, logger logging.Logger) *Loop {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Loop{in: br, out: out, answerer: answerer, logger: logger}
}

// Run loops until the user exits or input ends, both of which return nil.
// A backend failure is printed and the loop keeps going; any other error
// ends it.
func (l *Loop) Run(ctx context.Context, batch *paper.Batch) error {
	content := batch.CombinedContext()

	for {
		err := l.step(ctx, content)
		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrUserExit), errors.Is(err, io.EOF):
			return nil
		}

		var be *ai.BackendError
		if errors.As(err, &be) && ctx.Err() == nil {
			fmt.Fprintf(l.out, "Error: %v\n", err)
			continue
		}
		return err
	}
}

func (l *Loop) step(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprint(l.out, QuestionPrompt)
	question, err := ReadLine(l.in)
	if err != nil {
		return err
	}
	if strings.EqualFold(question, exitWord) {
		return ErrUserExit
	}

	l.logger.Debug("Answering question", logging.Field{Key: "question_chars", Value: len(question)})
	answer, err := l.answerer.Answer(ctx, question, content)
	if err != nil {
		return err
	}

	fmt.Fprintf(l.out, "\nAnswer:\n%s\n", answer)
	return nil
}

// ReadLine reads one line without its line terminator. A final line with
// no terminator is returned as is; io.EOF comes back only when nothing was
// read.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// SplitPaths splits a comma separated list of paths, trimming each one and
// dropping empty entries.
func SplitPaths(line string) []string {
	var paths []string
	for _, tok := range strings.Split(line, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			paths = append(paths, tok)
		}
	}
	return paths
}
