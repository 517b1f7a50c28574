package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned when the input file extension is not in
// the supported set.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var supportedFormats = map[string]bool{
	".mov": true,
	".mp4": true,
}

// Supported reports whether the file name has a supported video extension.
func Supported(name string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(name))]
}

// Process extracts audio from a video file and converts it to 16kHz mono WAV,
// the format Whisper handles best. The input is validated before any
// subprocess is spawned.
func (p *implProcessor) Process(ctx context.Context, videoPath string) (string, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return "", fmt.Errorf("input video: %w", err)
	}
	if !Supported(videoPath) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(videoPath))
	}

	tempDir := p.cfg.Paths.Temp
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := filepath.Base(videoPath)
	audioPath := filepath.Join(tempDir, strings.TrimSuffix(base, filepath.Ext(base))+".wav")

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn: drop video, keep audio only
	// -ar/-ac/-c:a: sample rate, channel count, and codec from config
	// -y: overwrite output file if exists
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", strconv.Itoa(p.cfg.FFmpeg.Channels),
		"-c:a", p.cfg.FFmpeg.AudioCodec,
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.Binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	info, err := os.Stat(audioPath)
	if err != nil || info.Size() == 0 {
		return "", fmt.Errorf("ffmpeg produced no output for %s", videoPath)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

// Duration queries ffprobe for the length of an audio file in seconds.
func (p *implProcessor) Duration(ctx context.Context, audioPath string) (float64, error) {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}

	return duration, nil
}
