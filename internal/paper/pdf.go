package paper

import (
	"fmt"
	"io"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	rpdf "rsc.io/pdf"
)

// TextExtractor decodes a PDF into one linear text blob in page order.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// PageCounter validates a PDF and reports how many pages it has.
type PageCounter interface {
	PageCount(path string) (int, error)
}

// PlainText rebuilds page text from glyph positions, one output line per
// baseline, so lines moved with Td inside a single text object still break.
// Every page ends with a newline.
type PlainText struct{}

func (PlainText) ExtractText(path string) (string, error) {
	src, closer, err := openGlyphs(path)
	if err != nil {
		return "", err
	}
	defer closer.Close()

	n, err := src.NumPage()
	if err != nil {
		return "", &InputError{Path: path, Err: err}
	}

	var b strings.Builder
	for i := 1; i <= n; i++ {
		glyphs, err := src.Glyphs(i)
		if err != nil {
			return "", &InputError{Path: path, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		b.WriteString(pageText(glyphs))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Preflight checks the file with pdfcpu before any extraction runs.
type Preflight struct{}

func (Preflight) PageCount(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, &InputError{Path: path, Err: err}
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, &InputError{Path: path, Err: err}
	}
	return n, nil
}

// glyphSource yields positioned glyphs page by page. Pages are 1-based.
type glyphSource interface {
	NumPage() (int, error)
	Glyphs(page int) ([]glyph, error)
}

// openGlyphs opens path with rsc.io/pdf, falling back to ledongthuc/pdf for
// files the former rejects. The caller closes the returned file.
func openGlyphs(path string) (glyphSource, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &InputError{Path: path, Err: err}
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, &InputError{Path: path, Err: err}
	}
	doc, err := newGlyphReader(f, fi.Size())
	if err == nil {
		return rscGlyphs{doc}, f, nil
	}
	f.Close()

	lf, ldoc, lerr := openFallback(path)
	if lerr != nil {
		return nil, nil, &InputError{Path: path, Err: err}
	}
	return ledongthucGlyphs{ldoc}, lf, nil
}

func newGlyphReader(f *os.File, size int64) (doc *rpdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return rpdf.NewReader(f, size)
}

func openFallback(path string) (f *os.File, doc *pdflib.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			if f != nil {
				f.Close()
			}
			f, doc, err = nil, nil, recovered(r)
		}
	}()
	return pdflib.Open(path)
}

type rscGlyphs struct{ doc *rpdf.Reader }

func (s rscGlyphs) NumPage() (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return s.doc.NumPage(), nil
}

func (s rscGlyphs) Glyphs(n int) (out []glyph, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	page := s.doc.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}
	for _, t := range page.Content().Text {
		out = append(out, glyph{x: t.X, y: t.Y, w: t.W, size: t.FontSize, s: t.S})
	}
	return out, nil
}

type ledongthucGlyphs struct{ doc *pdflib.Reader }

func (s ledongthucGlyphs) NumPage() (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return s.doc.NumPage(), nil
}

func (s ledongthucGlyphs) Glyphs(n int) (out []glyph, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	page := s.doc.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}
	for _, t := range page.Content().Text {
		out = append(out, glyph{x: t.X, y: t.Y, w: t.W, size: t.FontSize, s: t.S})
	}
	return out, nil
}
