package paper

import (
	"fmt"
	"strings"
)

// NullCell is how a nil table cell is spelled in serialized output.
const NullCell = "None"

// SerializeTables renders tables as an LLM-readable block. No tables, no block.
func SerializeTables(tables []Table) string {
	if len(tables) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n[TABLES]\n")
	for i, t := range tables {
		fmt.Fprintf(&b, "\nTable %d (Page %d):\n", i+1, t.Page)
		for _, row := range t.Data {
			b.WriteString(strings.Join(cellStrings(row), " | "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStrings(row Row) []string {
	out := make([]string, len(row))
	for i, c := range row {
		if c == nil {
			out[i] = NullCell
			continue
		}
		out[i] = *c
	}
	return out
}

// BuildContext labels every section body with its uppercased name, in
// insertion order, then appends the serialized tables.
func BuildContext(sections *SectionMap, tables []Table) string {
	var b strings.Builder
	for _, s := range sections.Sections() {
		b.WriteString("\n\n[")
		b.WriteString(strings.ToUpper(s.Name))
		b.WriteString("]\n")
		b.WriteString(s.Body)
	}
	b.WriteString(SerializeTables(tables))
	return b.String()
}
