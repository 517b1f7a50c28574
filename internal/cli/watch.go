package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediamind/internal/processor"
	"github.com/nguyentantai21042004/mediamind/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	var opts processor.Options
	var maxConcurrent int

	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a directory and process new videos as they arrive",
		Long:  "Monitor a directory for new video files and run the full pipeline on each one. Press Ctrl+C to stop.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			proc, err := newProcessor(deps, opts)
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, videoPath string) error {
				_, err := proc.Process(ctx, videoPath)
				return err
			}

			w, err := watcher.New(args[0], handler, deps.Logger, maxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			errChan := make(chan error, 1)
			go func() {
				errChan <- w.Start(ctx)
			}()

			deps.Logger.Info(ctx, "Watching %s for new videos. Press Ctrl+C to stop", args[0])

			select {
			case <-sigChan:
				deps.Logger.Info(ctx, "Shutdown signal received")
				cancel()
				// Start drains in-flight files before returning.
				err = <-errChan
			case err = <-errChan:
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory to save output files (default from config)")
	cmd.Flags().BoolVar(&opts.NoSummary, "no-summary", false, "Skip generating summaries for transcripts")
	cmd.Flags().BoolVar(&opts.Docx, "docx", false, "Also export outputs as .docx")
	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 1, "Maximum number of videos processed at once")

	return cmd
}
