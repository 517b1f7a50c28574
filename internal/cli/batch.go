package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediamind/internal/processor"
)

func NewBatchCmd(deps *Dependencies) *cobra.Command {
	var opts processor.Options

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Process all video files in a directory",
		Long:  "Process every supported video file in a directory sequentially. Failures are reported per file and do not abort the batch.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(deps, opts)
			if err != nil {
				return err
			}

			results, failed, err := proc.Batch(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d file(s), %d failure(s)\n", len(results), failed)
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory to save output files (default from config)")
	cmd.Flags().BoolVar(&opts.NoSummary, "no-summary", false, "Skip generating summaries for transcripts")
	cmd.Flags().BoolVar(&opts.Docx, "docx", false, "Also export outputs as .docx")

	return cmd
}
