package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediamind/internal/processor"
	"github.com/nguyentantai21042004/mediamind/internal/summarizer"
)

func NewSummarizeCmd(deps *Dependencies) *cobra.Command {
	var opts processor.Options

	cmd := &cobra.Command{
		Use:   "summarize <transcript.md>",
		Short: "Summarize an existing transcript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only the summarizer stage is needed here, so only its
			// credentials are required.
			sum, err := summarizer.New(deps.Config, deps.Logger)
			if err != nil {
				return err
			}
			proc := processor.New(deps.Config, nil, nil, sum, deps.Logger, opts)

			summaryPath, err := proc.SummarizeFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Summary: %s\n", summaryPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory to save output files (default from config)")
	cmd.Flags().BoolVar(&opts.Docx, "docx", false, "Also export the summary as .docx")

	return cmd
}
