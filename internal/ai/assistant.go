package ai

import (
	"context"
	"time"

	"github.com/thywilljoshua/paperqa/internal/logging"
)

const (
	DefaultSummaryTemperature float32 = 0.2
	DefaultAnswerTemperature  float32 = 0.1
)

// Assistant turns document context into summaries and answers through a
// single Backend.
type Assistant struct {
	backend     Backend
	summaryTemp float32
	answerTemp  float32
	logger      logging.Logger
}

type Option func(*Assistant)

func WithTemperatures(summary, answer float32) Option {
	return func(a *Assistant) {
		a.summaryTemp = summary
		a.answerTemp = answer
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(a *Assistant) {
		a.logger = logger
	}
}

func NewAssistant(backend Backend, options ...Option) *Assistant {
	a := &Assistant{
		backend:     backend,
		summaryTemp: DefaultSummaryTemperature,
		answerTemp:  DefaultAnswerTemperature,
		logger:      logging.NewNopLogger(),
	}
	for _, o := range options {
		o(a)
	}
	return a
}

// Summarize asks for a summary of content. An empty focus drops the focus
// clause from the prompt.
func (a *Assistant) Summarize(ctx context.Context, content, focus string) (string, error) {
	return a.complete(ctx, "summarize", summaryPrompt(content, focus), a.summaryTemp)
}

// Answer asks question against content only.
func (a *Assistant) Answer(ctx context.Context, question, content string) (string, error) {
	return a.complete(ctx, "answer", answerPrompt(question, content), a.answerTemp)
}

func (a *Assistant) complete(ctx context.Context, op, prompt string, temperature float32) (string, error) {
	log := a.logger.WithFields(
		logging.Field{Key: logging.FieldBackend, Value: a.backend.Name()},
		logging.Field{Key: logging.FieldModel, Value: a.backend.Model()},
		logging.Field{Key: logging.FieldOperation, Value: op},
	)
	log.Debug("Calling backend", logging.Field{Key: "prompt_chars", Value: len(prompt)})
	start := time.Now()

	out, err := a.backend.Complete(ctx, prompt, temperature)
	if err != nil {
		err = backendError(a.backend.Name(), op, err)
		log.WithError(err).Error("Backend call failed")
		return "", err
	}

	log.Debug("Backend responded", logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return out, nil
}
