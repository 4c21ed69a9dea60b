package paper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections(t *testing.T) {
	t.Parallel()

	t.Run("Headings open sections in order", func(t *testing.T) {
		m := SplitSections("Abstract\nwe study X.\nIntroduction\nthis paper...")

		assert.Equal(t, []string{"unknown", "abstract", "introduction"}, m.Keys())

		abstract, ok := m.Get("abstract")
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(abstract, "Abstract "))
		assert.Contains(t, abstract, "we study X. ")

		unknown, ok := m.Get("unknown")
		require.True(t, ok)
		assert.Equal(t, "", unknown)
	})

	t.Run("No headings", func(t *testing.T) {
		m := SplitSections("first line\nsecond line")

		assert.Equal(t, []Section{
			{Name: "unknown", Body: "first line second line "},
		}, m.Sections())
	})

	t.Run("Empty input", func(t *testing.T) {
		m := SplitSections("")

		assert.Equal(t, []Section{{Name: "unknown", Body: ""}}, m.Sections())
	})

	t.Run("Methods is not methodology", func(t *testing.T) {
		m := SplitSections("Methods\nwe trained a model")

		assert.Equal(t, []string{"unknown", "methods"}, m.Keys())
		body, _ := m.Get("methods")
		assert.Equal(t, "Methods we trained a model ", body)
	})

	t.Run("Methodology heading", func(t *testing.T) {
		m := SplitSections("  METHODOLOGY  \nsteps")

		assert.Equal(t, []string{"unknown", "methodology"}, m.Keys())
	})

	t.Run("Prefix match switches section", func(t *testing.T) {
		m := SplitSections("Introduction\nintro text\nResults of the second trial\n42%")

		assert.Equal(t, []string{"unknown", "introduction", "results"}, m.Keys())
		body, _ := m.Get("results")
		assert.Equal(t, "Results of the second trial 42% ", body)
	})

	t.Run("Repeated heading appends", func(t *testing.T) {
		m := SplitSections("Results\nfirst\nDiscussion\nmiddle\nResults\nsecond")

		assert.Equal(t, []string{"unknown", "results", "discussion"}, m.Keys())
		body, _ := m.Get("results")
		assert.Equal(t, "Results first Results second ", body)
	})

	t.Run("Line body keeps original whitespace", func(t *testing.T) {
		m := SplitSections("  Conclusion\n\tindented\r")

		body, _ := m.Get("conclusion")
		assert.Equal(t, "  Conclusion \tindented\r ", body)
	})

	t.Run("Numbered heading is not recognized", func(t *testing.T) {
		m := SplitSections("1. Introduction\ntext")

		assert.Equal(t, []string{"unknown"}, m.Keys())
	})
}

func TestSplitSections_Partitioning(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"Abstract\nA\n\nIntroduction\nB\nResults\nC\nResults\nD\nreferences\n[1] x",
		"preface\nEXPERIMENTAL SETUP\nrig\nExperiments\nrun\n",
		"\n\n\n",
	}

	for _, in := range inputs {
		m := SplitSections(in)

		_, ok := m.Get(UnknownSection)
		assert.True(t, ok, "unknown missing for %q", in)

		var joined strings.Builder
		for _, s := range m.Sections() {
			joined.WriteString(s.Body)
		}
		if in == "" {
			assert.Equal(t, "", joined.String())
			continue
		}
		want := strings.ReplaceAll(in, "\n", " ") + " "
		assert.Equal(t, want, joined.String(), "input %q", in)
	}
}

func TestMatchHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line  string
		title string
		ok    bool
	}{
		{"Abstract", "abstract", true},
		{"ABSTRACT:", "abstract", true},
		{"  background and motivation", "background", true},
		{"Experimental Setup", "experimental setup", true},
		{"Experiments", "experiments", true},
		{"Evaluation", "evaluation", true},
		{"References", "references", true},
		{"Related work", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		title, ok := matchHeading(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.title, title, tt.line)
	}
}
