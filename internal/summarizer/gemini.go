package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
)

type geminiSummarizer struct {
	apiKeys []string
	cfg     *config.Config
	logger  logger.Logger

	// mu guards currentKey: watch mode summarizes files from concurrent
	// goroutines, so rotation state is shared.
	mu         sync.Mutex
	currentKey int
}

func newGemini(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	if len(cfg.Gemini.APIKeys) == 0 {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}

	return &geminiSummarizer{
		apiKeys: cfg.Gemini.APIKeys,
		cfg:     cfg,
		logger:  log,
	}, nil
}

func (s *geminiSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	return summarizeTranscript(ctx, s, s.logger, transcript, s.cfg.Summarizer.MaxChunkTokens)
}

// complete sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *geminiSummarizer) complete(ctx context.Context, system, user string) (string, error) {
	prompt := system + "\n\n" + user

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key, keyIndex := s.nextKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.cfg.Gemini.Model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		}

		return "", errors.New("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// nextKey returns the API key to use for the next attempt and its index.
func (s *geminiSummarizer) nextKey() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

func (s *geminiSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
