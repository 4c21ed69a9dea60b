// Package export renders conditioned documents for the extract command.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/thywilljoshua/paperqa/internal/paper"
)

const (
	FormatYAML    = "yaml"
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatContext = "context"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatYAML, FormatJSON, FormatCSV, FormatContext}

// Record is the serialized form of one document.
type Record struct {
	Path     string          `json:"path" yaml:"path"`
	Pages    int             `json:"pages,omitempty" yaml:"pages,omitempty"`
	Sections []paper.Section `json:"sections" yaml:"sections"`
	Tables   []paper.Table   `json:"tables" yaml:"tables"`
}

// CellRecord is one table cell, flattened for CSV.
type CellRecord struct {
	Path   string `csv:"path"`
	Table  int    `csv:"table"`
	Page   int    `csv:"page"`
	Row    int    `csv:"row"`
	Column int    `csv:"column"`
	Value  string `csv:"value"`
	Null   bool   `csv:"null"`
}

func Records(batch *paper.Batch) []Record {
	docs := batch.Documents()
	out := make([]Record, 0, len(docs))
	for _, d := range docs {
		tables := d.Tables
		if tables == nil {
			tables = []paper.Table{}
		}
		out = append(out, Record{
			Path:     d.Path,
			Pages:    d.Pages,
			Sections: d.Sections.Sections(),
			Tables:   tables,
		})
	}
	return out
}

// Cells flattens every table of every document. Table, row and column
// numbers start at 1.
func Cells(batch *paper.Batch) []*CellRecord {
	var out []*CellRecord
	for _, d := range batch.Documents() {
		for ti, t := range d.Tables {
			for ri, row := range t.Data {
				for ci, c := range row {
					rec := &CellRecord{Path: d.Path, Table: ti + 1, Page: t.Page, Row: ri + 1, Column: ci + 1}
					if c == nil {
						rec.Null = true
					} else {
						rec.Value = *c
					}
					out = append(out, rec)
				}
			}
		}
	}
	return out
}

// Write renders batch to w in format.
func Write(w io.Writer, format string, batch *paper.Batch) error {
	switch strings.ToLower(format) {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Records(batch)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Records(batch)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatCSV:
		cells := Cells(batch)
		if cells == nil {
			cells = []*CellRecord{}
		}
		if err := gocsv.Marshal(cells, w); err != nil {
			return fmt.Errorf("encode csv: %w", err)
		}
		return nil
	case FormatContext:
		_, err := io.WriteString(w, batch.CombinedContext()+"\n")
		return err
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
