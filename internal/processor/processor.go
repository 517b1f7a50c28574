package processor

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Process orchestrates the pipeline for a single video: extract audio,
// transcribe, persist the transcript, then summarize and persist the summary.
// The extracted audio is a scratch artifact and is removed once transcription
// is done.
func (p *implProcessor) Process(ctx context.Context, videoPath string) (*Result, error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Processing video: %s", videoPath)

	audioPath, err := p.audio.Process(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	if duration, err := p.audio.Duration(ctx, audioPath); err != nil {
		p.logger.Debug(ctx, "Could not read audio duration: %v", err)
	} else {
		p.logger.Info(ctx, "Extracted audio: %s (%.1fs)", audioPath, duration)
	}

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	stamp := time.Now().Format(timestampLayout)
	name := baseName(videoPath)

	result := &Result{VideoPath: videoPath}

	result.TranscriptPath = outputPath(p.opts.OutputDir, name, "", stamp)
	if err := p.writeMarkdown(ctx, result.TranscriptPath, transcript); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}

	if !p.opts.NoSummary {
		p.logger.Info(ctx, "Generating summary for %s", name)

		summary, err := p.summarizer.Summarize(ctx, transcript)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}

		result.SummaryPath = outputPath(p.opts.OutputDir, name, "summary", stamp)
		content := fmt.Sprintf("# Summary: %s\n\n%s", name, summary)
		if err := p.writeMarkdown(ctx, result.SummaryPath, content); err != nil {
			return nil, fmt.Errorf("write summary: %w", err)
		}
	}

	p.logger.Info(ctx, "Processing completed in %s: %s", time.Since(startTime).Round(time.Millisecond), name)
	return result, nil
}

// SummarizeFile feeds an existing transcript markdown file into the
// summarizer and writes a timestamped summary artifact next to the other
// outputs.
func (p *implProcessor) SummarizeFile(ctx context.Context, transcriptPath string) (string, error) {
	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	summary, err := p.summarizer.Summarize(ctx, string(data))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := baseName(transcriptPath)
	summaryPath := outputPath(p.opts.OutputDir, name, "summary", time.Now().Format(timestampLayout))
	content := fmt.Sprintf("# Summary: %s\n\n%s", name, summary)
	if err := p.writeMarkdown(ctx, summaryPath, content); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return summaryPath, nil
}
