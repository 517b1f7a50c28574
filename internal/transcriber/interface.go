package transcriber

import "context"

// Transcriber converts an audio file into a timestamped markdown transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
