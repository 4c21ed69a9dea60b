package session

import (
	"context"
	"fmt"
	"io"

	"github.com/thywilljoshua/paperqa/internal/paper"
)

const SummariesHeader = "--- AUTO SUMMARIES ---"

// Summarizer summarizes one document context.
type Summarizer interface {
	Summarize(ctx context.Context, content, focus string) (string, error)
}

// WriteSummaries prints a summary for every document in batch order. The
// first failure stops it.
func WriteSummaries(ctx context.Context, w io.Writer, s Summarizer, batch *paper.Batch, focus string) error {
	fmt.Fprintf(w, "\n%s\n", SummariesHeader)
	for _, doc := range batch.Documents() {
		summary, err := s.Summarize(ctx, doc.Context, focus)
		if err != nil {
			return fmt.Errorf("summarize %s: %w", doc.Path, err)
		}
		fmt.Fprintf(w, "\n%s\n%s\n", doc.Path, summary)
	}
	return nil
}
