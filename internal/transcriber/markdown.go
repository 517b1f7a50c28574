package transcriber

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Segment is a time-aligned portion of a transcription.
type Segment struct {
	Start   float64
	End     float64
	Speaker string
	Text    string
}

// formatTranscript renders segments as markdown: a document title followed by
// one heading per segment carrying its timestamp range and, when known, the
// speaker label.
func formatTranscript(audioPath string, segments []Segment) string {
	base := filepath.Base(audioPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Transcript: %s\n\n", name))

	for _, seg := range segments {
		sb.WriteString(fmt.Sprintf("## [%s - %s]", formatTimestamp(seg.Start), formatTimestamp(seg.End)))
		if seg.Speaker != "" {
			sb.WriteString(" " + seg.Speaker)
		}
		sb.WriteString("\n\n")
		sb.WriteString(seg.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// formatTimestamp renders seconds as HH:MM:SS.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
