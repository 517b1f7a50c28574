package summarizer

import "context"

// Summarizer turns a markdown transcript into a structured markdown summary
// with key points, main topics, and action items.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
