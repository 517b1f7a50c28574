package processor

import "context"

// Result describes the artifacts produced for a single input file.
type Result struct {
	VideoPath      string
	TranscriptPath string
	SummaryPath    string
}

// Processor orchestrates the extraction, transcription, and summarization
// stages for single files and directories.
type Processor interface {
	// Process runs the full pipeline for one video file.
	Process(ctx context.Context, videoPath string) (*Result, error)

	// Batch runs the pipeline for every supported video in a directory,
	// continuing past per-file failures. It returns the successful results
	// and the number of failures.
	Batch(ctx context.Context, dir string) ([]*Result, int, error)

	// SummarizeFile summarizes an existing transcript markdown file and
	// returns the path of the written summary.
	SummarizeFile(ctx context.Context, transcriptPath string) (string, error)
}
