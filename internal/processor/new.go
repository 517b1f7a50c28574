package processor

import (
	"github.com/nguyentantai21042004/mediamind/internal/audio"
	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
	"github.com/nguyentantai21042004/mediamind/internal/summarizer"
	"github.com/nguyentantai21042004/mediamind/internal/transcriber"
)

// Options control output placement and optional stages.
type Options struct {
	OutputDir string
	NoSummary bool
	Docx      bool
}

type implProcessor struct {
	cfg         *config.Config
	audio       audio.Processor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	opts        Options
}

// New creates a new Processor instance. The summarizer may be nil when
// Options.NoSummary is set.
func New(cfg *config.Config, ap audio.Processor, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger, opts Options) Processor {
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.Paths.Output
	}
	return &implProcessor{
		cfg:         cfg,
		audio:       ap,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
		opts:        opts,
	}
}
