package ai

import "strings"

// DefaultFocus is the focus used for automatic summaries.
const DefaultFocus = "methodology, results, and best-performing metrics"

func summaryPrompt(content, focus string) string {
	focusText := ""
	if focus != "" {
		focusText = "Focus especially on " + focus + "."
	}

	var b strings.Builder
	b.WriteString("\nSummarize the following academic content clearly and accurately.\n")
	b.WriteString(focusText)
	b.WriteString("\n\nInclude important findings, methods, and quantitative results if present.\n\nContent:\n")
	b.WriteString(content)
	b.WriteString("\n")
	return b.String()
}

func answerPrompt(question, content string) string {
	var b strings.Builder
	b.WriteString("\nAnswer the question using ONLY the context below.\n")
	b.WriteString("If numbers or metrics are present, report them exactly.\n\nContext:\n")
	b.WriteString(content)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(question)
	b.WriteString("\n")
	return b.String()
}
