package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
)

type fakeSpeechClient struct {
	resp  openai.AudioResponse
	err   error
	calls int
}

func (f *fakeSpeechClient) CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	f.calls++
	return f.resp, f.err
}

// audioResponse builds an openai.AudioResponse from JSON so tests don't have
// to spell out the client library's anonymous segment struct.
func audioResponse(t *testing.T, body string) openai.AudioResponse {
	t.Helper()
	var resp openai.AudioResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func newTestTranscriber(t *testing.T, client speechClient) *implTranscriber {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return &implTranscriber{client: client, cfg: cfg, logger: logger.New("error")}
}

func writeAudioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.wav")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribeFormatsSegments(t *testing.T) {
	client := &fakeSpeechClient{resp: audioResponse(t, `{
		"duration": 45,
		"text": "first second third",
		"segments": [
			{"start": 0, "end": 15, "text": "first"},
			{"start": 15, "end": 30, "text": "second"},
			{"start": 30, "end": 45, "text": "third"}
		]
	}`)}
	tr := newTestTranscriber(t, client)

	md, err := tr.Transcribe(context.Background(), writeAudioFile(t, "RIFF"))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if !strings.HasPrefix(md, "# Transcript: meeting\n") {
		t.Errorf("transcript missing title: %q", md)
	}
	if got := strings.Count(md, "## ["); got != 3 {
		t.Errorf("transcript has %d segment headings, want 3", got)
	}

	wantInOrder := []string{
		"## [00:00:00 - 00:00:15]", "first",
		"## [00:00:15 - 00:00:30]", "second",
		"## [00:00:30 - 00:00:45]", "third",
	}
	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(md[pos:], want)
		if idx < 0 {
			t.Fatalf("transcript missing %q after position %d:\n%s", want, pos, md)
		}
		pos += idx + len(want)
	}
}

func TestTranscribeMissingAudio(t *testing.T) {
	client := &fakeSpeechClient{}
	tr := newTestTranscriber(t, client)

	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Fatal("Transcribe() should fail for a missing file")
	}
	if client.calls != 0 {
		t.Errorf("API called %d times, want 0", client.calls)
	}
}

func TestTranscribeEmptyAudio(t *testing.T) {
	client := &fakeSpeechClient{}
	tr := newTestTranscriber(t, client)

	_, err := tr.Transcribe(context.Background(), writeAudioFile(t, ""))
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("Transcribe() error = %v, want empty-file error", err)
	}
	if client.calls != 0 {
		t.Errorf("API called %d times, want 0", client.calls)
	}
}

func TestTranscribeAPIError(t *testing.T) {
	client := &fakeSpeechClient{err: errors.New("rate limited")}
	tr := newTestTranscriber(t, client)

	_, err := tr.Transcribe(context.Background(), writeAudioFile(t, "RIFF"))
	if err == nil || !strings.Contains(err.Error(), "create transcription") {
		t.Errorf("Transcribe() error = %v, want wrapped API error", err)
	}
}

func TestTranscribeEmptyResponse(t *testing.T) {
	client := &fakeSpeechClient{resp: audioResponse(t, `{"text": "  "}`)}
	tr := newTestTranscriber(t, client)

	_, err := tr.Transcribe(context.Background(), writeAudioFile(t, "RIFF"))
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("Transcribe() error = %v, want ErrEmptyTranscript", err)
	}
}

func TestTranscribeFallbackToFullText(t *testing.T) {
	client := &fakeSpeechClient{resp: audioResponse(t, `{"duration": 90, "text": "whole recording"}`)}
	tr := newTestTranscriber(t, client)

	md, err := tr.Transcribe(context.Background(), writeAudioFile(t, "RIFF"))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got := strings.Count(md, "## ["); got != 1 {
		t.Errorf("transcript has %d headings, want 1", got)
	}
	if !strings.Contains(md, "## [00:00:00 - 00:01:30]") {
		t.Errorf("fallback heading should span full duration:\n%s", md)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{75.4, "00:01:15"},
		{3661, "01:01:01"},
		{59.9, "00:00:59"},
	}

	for _, tt := range tests {
		if got := formatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("formatTimestamp(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatTranscriptSpeaker(t *testing.T) {
	md := formatTranscript("call.wav", []Segment{
		{Start: 0, End: 10, Speaker: "Speaker 1", Text: "hello"},
	})
	if !strings.Contains(md, "## [00:00:00 - 00:00:10] Speaker 1") {
		t.Errorf("speaker label missing:\n%s", md)
	}
}
