package paper

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"

	"github.com/thywilljoshua/paperqa/internal/logging"
)

// TableExtractor finds tabular regions in a PDF.
type TableExtractor interface {
	ExtractTables(path string) ([]Table, error)
}

const (
	minTableRows       = 2
	minTableCols       = 2
	minTableConfidence = 0.5

	// A cell of this many words or more reads as a sentence.
	proseCellWords = 4
)

var (
	errNoDetector = errors.New("geometric table detector not registered")
	errProse      = errors.New("cells read as running text")
)

// GeometricTables detects tables with tabula's geometric detector, which
// aligns text fragments into rows and columns and uses drawn rules when the
// page has them. Candidates whose cells are mostly sentences are dropped,
// which keeps two-column prose out. A page the detector cannot handle is
// skipped with a warning.
type GeometricTables struct {
	detector tables.Detector
	err      error
	logger   logging.Logger
}

func NewGeometricTables(logger logging.Logger) *GeometricTables {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	e := &GeometricTables{logger: logger}

	e.detector = tables.GetDetector("geometric")
	if e.detector == nil {
		e.err = errNoDetector
		return e
	}

	config := tables.DefaultConfig()
	config.MinRows = minTableRows
	config.MinCols = minTableCols
	config.MinConfidence = minTableConfidence
	config.UseLines = true
	config.UseWhitespace = true
	if err := e.detector.Configure(config); err != nil {
		e.err = fmt.Errorf("configure table detector: %w", err)
	}
	return e
}

func (e *GeometricTables) ExtractTables(path string) (found []Table, err error) {
	if e.err != nil {
		return nil, e.err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			found, err = nil, &InputError{Path: path, Err: recovered(r)}
		}
	}()

	pdfReader, err := reader.New(f)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	doc, err := pdfReader.Parse()
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	for i, page := range doc.Pages {
		n := i + 1
		candidates, err := func() (ts []*model.Table, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = recovered(r)
				}
			}()
			return e.detector.Detect(page)
		}()
		if err != nil {
			warning := &ExtractionWarning{Path: path, Page: n, Err: err}
			e.logger.WithError(warning).Warn("Skipping page tables",
				logging.Field{Key: logging.FieldFile, Value: path},
				logging.Field{Key: logging.FieldPage, Value: n})
			continue
		}

		for j, t := range candidates {
			rows, err := tableRows(t)
			if err == nil && looksLikeProse(rows) {
				err = errProse
			}
			if err != nil {
				warning := &ExtractionWarning{Path: path, Page: n, Table: j + 1, Err: err}
				e.logger.WithError(warning).Warn("Dropped table candidate",
					logging.Field{Key: logging.FieldFile, Value: path},
					logging.Field{Key: logging.FieldPage, Value: n})
				continue
			}
			found = append(found, Table{Page: n, Data: rows})
		}
	}

	e.logger.Debug("Extracted tables",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(found)})
	return found, nil
}

// tableRows reads the detected grid back through its CSV rendering. Every
// row is padded to the table's column count and blank cells become nil.
func tableRows(t *model.Table) ([]Row, error) {
	records, err := gocsv.DefaultCSVReader(strings.NewReader(t.ToCSV())).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table grid: %w", err)
	}

	cols := t.ColCount()
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		width := max(cols, len(rec))
		row := make(Row, width)
		for i, v := range rec {
			if v = strings.TrimSpace(v); v != "" {
				row[i] = Cell(v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// looksLikeProse reports whether most filled cells are sentences.
func looksLikeProse(rows []Row) bool {
	var filled, sentences int
	for _, row := range rows {
		for _, c := range row {
			if c == nil {
				continue
			}
			filled++
			if len(strings.Fields(*c)) >= proseCellWords {
				sentences++
			}
		}
	}
	return filled > 0 && sentences*2 > filled
}
