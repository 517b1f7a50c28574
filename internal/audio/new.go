package audio

import (
	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
	"github.com/nguyentantai21042004/mediamind/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
