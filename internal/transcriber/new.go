package transcriber

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
)

// speechClient is the subset of the OpenAI client used for transcription.
type speechClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

type implTranscriber struct {
	client speechClient
	cfg    *config.Config
	logger logger.Logger
}

// New creates a Transcriber backed by the OpenAI Whisper API.
func New(cfg *config.Config, log logger.Logger) (Transcriber, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &implTranscriber{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: log,
	}, nil
}
