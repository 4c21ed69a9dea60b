package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/paperqa/internal/ai"
	"github.com/thywilljoshua/paperqa/internal/config"
	"github.com/thywilljoshua/paperqa/internal/logging"
	"github.com/thywilljoshua/paperqa/internal/paper"
	"github.com/thywilljoshua/paperqa/internal/session"
)

const pathsPrompt = "Enter PDF paths: "

var errNoPaths = errors.New("no PDF paths given")

// app carries what every command needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger logging.Logger
	in     *bufio.Reader
	out    io.Writer
}

func newApp(cmd *cobra.Command, requireBackend bool) (*app, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(requireBackend); err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		logger: cfg.NewLogger(),
		in:     bufio.NewReader(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
	}, nil
}

// paths returns the batch paths from args, or prompts for them when there
// are none.
func (a *app) paths(args []string) ([]string, error) {
	var line string
	if len(args) > 0 {
		line = strings.Join(args, ",")
	} else {
		fmt.Fprint(a.out, pathsPrompt)
		l, err := session.ReadLine(a.in)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read paths: %w", err)
		}
		line = l
	}

	paths := session.SplitPaths(line)
	if len(paths) == 0 {
		return nil, errNoPaths
	}
	return paths, nil
}

func (a *app) process(ctx context.Context, paths []string) (*paper.Batch, error) {
	options := []paper.Option{
		paper.WithLogger(a.logger),
	}
	if a.cfg.PDF.Preflight {
		options = append(options, paper.WithPreflight(paper.Preflight{}))
	}
	return paper.NewProcessor(options...).Process(ctx, paths)
}

func (a *app) assistant(ctx context.Context) (*ai.Assistant, error) {
	backend, err := ai.NewBackend(ctx, a.cfg.Backend())
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Backend ready",
		logging.Field{Key: logging.FieldBackend, Value: backend.Name()},
		logging.Field{Key: logging.FieldModel, Value: backend.Model()})

	return ai.NewAssistant(backend,
		ai.WithTemperatures(a.cfg.AI.SummaryTemperature, a.cfg.AI.AnswerTemperature),
		ai.WithLogger(a.logger),
	), nil
}

// addBackendFlags registers the flags that select and tune the backend.
func addBackendFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("provider", "", "AI provider: openai|gemini (default openai)")
	cmd.PersistentFlags().String("model", "", "model identifier (default depends on provider)")
	cmd.PersistentFlags().String("base-url", "", "OpenAI-compatible endpoint to use instead of api.openai.com")
	cmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error (default info)")
	cmd.PersistentFlags().String("log-format", "", "log format: text|json (default text)")
}
