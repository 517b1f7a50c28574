package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediamind/internal/processor"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	var opts processor.Options

	cmd := &cobra.Command{
		Use:   "process <video>",
		Short: "Process a single video file",
		Long:  "Extract audio from a video file, transcribe it, and write a timestamped transcript plus a markdown summary.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(deps, opts)
			if err != nil {
				return err
			}

			result, err := proc.Process(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transcript: %s\n", result.TranscriptPath)
			if result.SummaryPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Summary:    %s\n", result.SummaryPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory to save output files (default from config)")
	cmd.Flags().BoolVar(&opts.NoSummary, "no-summary", false, "Skip generating a summary of the transcript")
	cmd.Flags().BoolVar(&opts.Docx, "docx", false, "Also export outputs as .docx")

	return cmd
}
