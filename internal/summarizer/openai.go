package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
)

// chatClient is the subset of the OpenAI client used for summarization.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openaiSummarizer struct {
	client chatClient
	cfg    *config.Config
	logger logger.Logger
}

func newOpenAI(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &openaiSummarizer{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: log,
	}, nil
}

func (s *openaiSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	return summarizeTranscript(ctx, s, s.logger, transcript, s.cfg.Summarizer.MaxChunkTokens)
}

func (s *openaiSummarizer) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.OpenAI.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   s.cfg.OpenAI.MaxCompletionTokens,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("empty completion")
	}

	return out, nil
}
