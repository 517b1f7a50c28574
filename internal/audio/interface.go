package audio

import "context"

// Processor extracts a transcription-ready audio stream from a video file.
type Processor interface {
	// Process validates the video file and extracts its audio track as a
	// 16kHz mono WAV, returning the path of the extracted file.
	Process(ctx context.Context, videoPath string) (string, error)

	// Duration returns the length of an audio file in seconds.
	Duration(ctx context.Context, audioPath string) (float64, error)
}
