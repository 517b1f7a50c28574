package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/mediamind/internal/summarizer"
)

const timestampLayout = "20060102_150405"

// baseName returns the file name without directory or extension.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// outputPath builds `<name>_<stamp>.md` or `<name>_<kind>_<stamp>.md`.
func outputPath(dir, name, kind, stamp string) string {
	if kind == "" {
		return filepath.Join(dir, fmt.Sprintf("%s_%s.md", name, stamp))
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s.md", name, kind, stamp))
}

// writeMarkdown persists a markdown artifact and, when docx export is
// enabled, renders a .docx sibling. A docx failure is logged, not fatal.
func (p *implProcessor) writeMarkdown(ctx context.Context, path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	p.logger.Info(ctx, "Wrote %s", path)

	if p.opts.Docx {
		docxPath := strings.TrimSuffix(path, ".md") + ".docx"
		if err := summarizer.ExportDocx(baseName(path), content, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to export docx %s: %v", docxPath, err)
		} else {
			p.logger.Info(ctx, "Wrote %s", docxPath)
		}
	}

	return nil
}

// cleanupTempFile removes a scratch file, logging a warning on failure.
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
