package paper

import "strings"

// SplitSections partitions text into canonical sections line by line.
//
// A line is a heading when, trimmed and lowercased, it equals or starts with
// a canonical title. The heading line itself belongs to the section it opens.
// Each stored line is followed by a single space. Repeated headings append to
// the existing section.
func SplitSections(text string) *SectionMap {
	m := NewSectionMap()
	m.ensure(UnknownSection)
	if text == "" {
		return m
	}

	current := UnknownSection
	for _, line := range strings.Split(text, "\n") {
		if title, ok := matchHeading(line); ok {
			current = title
		}
		m.appendLine(current, line)
	}
	return m
}

// matchHeading reports the first canonical title the line opens with.
// "Results show that..." matches "results"; this is accepted.
func matchHeading(line string) (string, bool) {
	clean := strings.ToLower(strings.TrimSpace(line))
	if clean == "" {
		return "", false
	}
	for _, title := range CanonicalTitles {
		if clean == title || strings.HasPrefix(clean, title) {
			return title, true
		}
	}
	return "", false
}
