package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/mediamind/internal/audio"
)

// Batch processes every supported video file in dir sequentially. A failing
// file is logged and counted; the batch moves on to the next file.
func (p *implProcessor) Batch(ctx context.Context, dir string) ([]*Result, int, error) {
	videos, err := discoverVideos(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("discover videos: %w", err)
	}

	if len(videos) == 0 {
		p.logger.Info(ctx, "No media files found in %s", dir)
		return nil, 0, nil
	}

	p.logger.Info(ctx, "Found %d video files to process", len(videos))

	var results []*Result
	failed := 0

	for i, videoPath := range videos {
		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(videos), videoPath)

		result, err := p.Process(ctx, videoPath)
		if err != nil {
			p.logger.Error(ctx, "Failed to process %s: %v", videoPath, err)
			failed++
			continue
		}
		results = append(results, result)
	}

	p.logger.Info(ctx, "Batch complete: %d success, %d failed", len(results), failed)
	return results, failed, nil
}

func discoverVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if audio.Supported(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
