package cli

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediamind/internal/audio"
	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
	"github.com/nguyentantai21042004/mediamind/internal/processor"
	"github.com/nguyentantai21042004/mediamind/internal/summarizer"
	"github.com/nguyentantai21042004/mediamind/internal/transcriber"
	"github.com/nguyentantai21042004/mediamind/pkg/executor"
)

// Dependencies carries the shared wiring for every command.
type Dependencies struct {
	Config   *config.Config
	Logger   logger.Logger
	Executor executor.Executor
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mediamind",
		Short:         "Extract, transcribe, and summarize audio from video files",
		Long:          "MediaMind extracts audio from video files with FFmpeg, transcribes it using the Whisper API, and generates structured markdown summaries with a hosted language model.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewProcessCmd(deps))
	rootCmd.AddCommand(NewBatchCmd(deps))
	rootCmd.AddCommand(NewSummarizeCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))

	return rootCmd
}

// newProcessor wires the pipeline stages for a command invocation. The
// summarizer is only constructed (and its credentials only required) when the
// summary stage will run.
func newProcessor(deps *Dependencies, opts processor.Options) (processor.Processor, error) {
	ap := audio.New(deps.Config, deps.Executor, deps.Logger)

	tr, err := transcriber.New(deps.Config, deps.Logger)
	if err != nil {
		return nil, err
	}

	var sum summarizer.Summarizer
	if !opts.NoSummary {
		sum, err = summarizer.New(deps.Config, deps.Logger)
		if err != nil {
			return nil, err
		}
	}

	return processor.New(deps.Config, ap, tr, sum, deps.Logger, opts), nil
}
