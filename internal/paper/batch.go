package paper

import (
	"context"
	"errors"
	"time"

	"github.com/thywilljoshua/paperqa/internal/logging"
)

// Processor runs each input path through extraction, section splitting and
// context building. Documents are processed one at a time, in order.
type Processor struct {
	text      TextExtractor
	tables    TableExtractor
	preflight PageCounter
	logger    logging.Logger
}

type Option func(*Processor)

func WithLogger(logger logging.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

func WithTextExtractor(e TextExtractor) Option {
	return func(p *Processor) {
		p.text = e
	}
}

func WithTableExtractor(e TableExtractor) Option {
	return func(p *Processor) {
		p.tables = e
	}
}

// WithPreflight validates every file with pc before extracting it.
func WithPreflight(pc PageCounter) Option {
	return func(p *Processor) {
		p.preflight = pc
	}
}

func NewProcessor(options ...Option) *Processor {
	p := &Processor{
		text:   PlainText{},
		logger: logging.NewNopLogger(),
	}

	for _, o := range options {
		o(p)
	}

	if p.tables == nil {
		p.tables = NewGeometricTables(p.logger)
	}

	return p
}

// Process conditions every path. The first failure aborts the batch and
// later paths are never touched.
func (p *Processor) Process(ctx context.Context, paths []string) (*Batch, error) {
	batch := NewBatch()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := p.ProcessDocument(path)
		if err != nil {
			return nil, err
		}
		batch.Put(doc)
	}
	return batch, nil
}

func (p *Processor) ProcessDocument(path string) (*Document, error) {
	log := p.logger.WithField(logging.FieldFile, path)
	log.Info("Processing document")
	start := time.Now()

	doc := &Document{Path: path}

	if p.preflight != nil {
		n, err := p.preflight.PageCount(path)
		if err != nil {
			return nil, asInputError(path, err)
		}
		doc.Pages = n
	}

	text, err := p.text.ExtractText(path)
	if err != nil {
		return nil, asInputError(path, err)
	}

	tables, err := p.tables.ExtractTables(path)
	if err != nil {
		return nil, asInputError(path, err)
	}

	doc.Sections = SplitSections(text)
	doc.Tables = tables
	doc.Context = BuildContext(doc.Sections, tables)

	log.Debug("Document conditioned",
		logging.Field{Key: "sections", Value: doc.Sections.Len()},
		logging.Field{Key: "tables", Value: len(tables)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return doc, nil
}

func asInputError(path string, err error) error {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return err
	}
	return &InputError{Path: path, Err: err}
}
