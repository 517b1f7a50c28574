package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyTranscript is returned when the transcription API responds with no
// usable text.
var ErrEmptyTranscript = errors.New("empty transcription result")

// Transcribe submits the audio file to Whisper and formats the time-aligned
// segments as markdown. The audio is re-submitted on every call.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return "", fmt.Errorf("audio file: %w", err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("audio file is empty: %s", audioPath)
	}

	t.logger.Info(ctx, "Transcribing audio with %s: %s", t.cfg.OpenAI.WhisperModel, audioPath)

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.cfg.OpenAI.WhisperModel,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	segments := make([]Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{Start: s.Start, End: s.End, Text: text})
	}

	// Some models return plain text without segment timing; fall back to a
	// single segment spanning the whole audio.
	if len(segments) == 0 {
		text := strings.TrimSpace(resp.Text)
		if text == "" {
			return "", ErrEmptyTranscript
		}
		segments = append(segments, Segment{Start: 0, End: resp.Duration, Text: text})
	}

	t.logger.Info(ctx, "Transcription completed: %d segments", len(segments))
	return formatTranscript(audioPath, segments), nil
}
