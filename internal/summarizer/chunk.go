package summarizer

import "strings"

// estimateTokens approximates the token count of a text. Four characters per
// token tracks GPT tokenizers closely enough for chunk budgeting.
func estimateTokens(text string) int {
	return len(text) / 4
}

// splitChunks splits text on paragraph boundaries into pieces that each fit
// the token budget. A single paragraph larger than the budget becomes its own
// chunk rather than being cut mid-sentence.
func splitChunks(text string, maxTokens int) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current []string
	currentTokens := 0

	for _, paragraph := range paragraphs {
		tokens := estimateTokens(paragraph)

		if currentTokens+tokens > maxTokens && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n\n"))
			current = nil
			currentTokens = 0
		}

		current = append(current, paragraph)
		currentTokens += tokens
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n\n"))
	}

	return chunks
}
