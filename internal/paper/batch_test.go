package paper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeText struct {
	texts map[string]string
	fail  map[string]error
	calls []string
}

func (f *fakeText) ExtractText(path string) (string, error) {
	f.calls = append(f.calls, path)
	if err, ok := f.fail[path]; ok {
		return "", err
	}
	return f.texts[path], nil
}

type fakeTables struct {
	tables map[string][]Table
	err    error
}

func (f *fakeTables) ExtractTables(path string) ([]Table, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tables[path], nil
}

type fakePages struct {
	pages int
	err   error
}

func (f fakePages) PageCount(string) (int, error) {
	return f.pages, f.err
}

func TestProcessor_Process(t *testing.T) {
	t.Parallel()

	t.Run("Documents keep input order", func(t *testing.T) {
		text := &fakeText{texts: map[string]string{
			"b.pdf": "Abstract\nsecond",
			"a.pdf": "Abstract\nfirst",
		}}
		tables := &fakeTables{tables: map[string][]Table{
			"a.pdf": {{Page: 2, Data: []Row{{Cell("k"), Cell("v")}}}},
		}}
		p := NewProcessor(WithTextExtractor(text), WithTableExtractor(tables))

		batch, err := p.Process(context.Background(), []string{"b.pdf", "a.pdf"})
		require.NoError(t, err)

		assert.Equal(t, []string{"b.pdf", "a.pdf"}, batch.Paths())

		a, ok := batch.Get("a.pdf")
		require.True(t, ok)
		assert.Equal(t, []string{"unknown", "abstract"}, a.Sections.Keys())
		require.Len(t, a.Tables, 1)
		assert.Contains(t, a.Context, "[ABSTRACT]\nAbstract first ")
		assert.Contains(t, a.Context, "Table 1 (Page 2):\nk | v\n")

		b, _ := batch.Get("b.pdf")
		assert.NotContains(t, b.Context, "[TABLES]")
	})

	t.Run("First failure aborts the batch", func(t *testing.T) {
		text := &fakeText{
			texts: map[string]string{"b.pdf": "text"},
			fail:  map[string]error{"a.pdf": errors.New("not a pdf")},
		}
		p := NewProcessor(WithTextExtractor(text), WithTableExtractor(&fakeTables{}))

		batch, err := p.Process(context.Background(), []string{"a.pdf", "b.pdf"})

		assert.Nil(t, batch)
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "a.pdf", inputErr.Path)
		assert.Equal(t, []string{"a.pdf"}, text.calls)
	})

	t.Run("Duplicate paths collapse to one entry", func(t *testing.T) {
		text := &fakeText{texts: map[string]string{"a.pdf": "x", "b.pdf": "y"}}
		p := NewProcessor(WithTextExtractor(text), WithTableExtractor(&fakeTables{}))

		batch, err := p.Process(context.Background(), []string{"a.pdf", "b.pdf", "a.pdf"})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.pdf", "b.pdf"}, batch.Paths())
		assert.Len(t, text.calls, 3)
	})

	t.Run("Cancelled context stops before extraction", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		text := &fakeText{}
		p := NewProcessor(WithTextExtractor(text), WithTableExtractor(&fakeTables{}))

		_, err := p.Process(ctx, []string{"a.pdf"})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, text.calls)
	})
}

func TestProcessor_ProcessDocument(t *testing.T) {
	t.Parallel()

	t.Run("Preflight failure skips extraction", func(t *testing.T) {
		text := &fakeText{}
		p := NewProcessor(
			WithTextExtractor(text),
			WithTableExtractor(&fakeTables{}),
			WithPreflight(fakePages{err: errors.New("corrupt xref")}),
		)

		_, err := p.ProcessDocument("broken.pdf")

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "broken.pdf", inputErr.Path)
		assert.EqualError(t, inputErr.Err, "corrupt xref")
		assert.Empty(t, text.calls)
	})

	t.Run("Preflight page count is recorded", func(t *testing.T) {
		p := NewProcessor(
			WithTextExtractor(&fakeText{texts: map[string]string{"a.pdf": "hi"}}),
			WithTableExtractor(&fakeTables{}),
			WithPreflight(fakePages{pages: 9}),
		)

		doc, err := p.ProcessDocument("a.pdf")
		require.NoError(t, err)
		assert.Equal(t, 9, doc.Pages)
	})

	t.Run("Table failure is an input error", func(t *testing.T) {
		p := NewProcessor(
			WithTextExtractor(&fakeText{}),
			WithTableExtractor(&fakeTables{err: errors.New("bad stream")}),
		)

		_, err := p.ProcessDocument("a.pdf")

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "a.pdf", inputErr.Path)
	})

	t.Run("Existing input errors are not wrapped twice", func(t *testing.T) {
		orig := &InputError{Path: "inner.pdf", Err: errors.New("eof")}
		p := NewProcessor(
			WithTextExtractor(&fakeText{fail: map[string]error{"a.pdf": orig}}),
			WithTableExtractor(&fakeTables{}),
		)

		_, err := p.ProcessDocument("a.pdf")
		assert.Same(t, orig, err)
	})
}
