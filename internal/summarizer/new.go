package summarizer

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
)

// ErrEmptyInput is returned when the transcript to summarize is blank.
var ErrEmptyInput = errors.New("transcript is empty")

// ErrMalformedSummary is returned when the model response does not contain
// the three required sections.
var ErrMalformedSummary = errors.New("malformed summary")

// New creates a Summarizer for the provider named in the config.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Provider {
	case config.ProviderGemini:
		return newGemini(cfg, log)
	case config.ProviderOpenAI:
		return newOpenAI(cfg, log)
	default:
		return nil, fmt.Errorf("unknown summarizer provider: %q", cfg.Summarizer.Provider)
	}
}
