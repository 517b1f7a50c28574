package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/mediamind/internal/logger"
)

// completer is implemented by each provider: one prompt in, one response out.
type completer interface {
	complete(ctx context.Context, system, user string) (string, error)
}

// summarizeTranscript is the provider-independent path: split the transcript
// into chunks under the token budget, summarize each, combine when the
// transcript spanned several chunks, then validate and re-render the result.
func summarizeTranscript(ctx context.Context, c completer, log logger.Logger, transcript string, maxChunkTokens int) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyInput
	}

	chunks := splitChunks(transcript, maxChunkTokens)
	summaries := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		log.Debug(ctx, "Summarizing chunk %d/%d", i+1, len(chunks))

		out, err := c.complete(ctx, systemPrompt, fmt.Sprintf(summaryPrompt, chunk))
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, out)
	}

	final := summaries[0]
	if len(summaries) > 1 {
		log.Debug(ctx, "Combining %d chunk summaries", len(summaries))

		combined, err := c.complete(ctx, systemPrompt, fmt.Sprintf(combinePrompt, strings.Join(summaries, "\n---\n")))
		if err != nil {
			return "", fmt.Errorf("combine summaries: %w", err)
		}
		final = combined
	}

	sections, err := parseSections(final)
	if err != nil {
		return "", err
	}

	return renderSections(sections), nil
}
