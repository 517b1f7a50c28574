package summarizer

import (
	"fmt"
	"strings"
)

// sections holds the three parts every summary must contain.
type sections struct {
	KeyPoints   []string
	MainTopics  []string
	ActionItems []string
}

var sectionTitles = []string{"Key Points", "Main Topics", "Action Items"}

// parseSections extracts the three required sections from a model response.
// Models occasionally vary heading levels or append a colon, so matching is
// tolerant of those; anything outside the three sections is dropped.
func parseSections(md string) (*sections, error) {
	found := make(map[string][]string)
	order := make([]string, 0, len(sectionTitles))
	current := ""

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)

		if title, ok := matchSectionHeading(trimmed); ok {
			current = title
			if _, seen := found[title]; !seen {
				found[title] = nil
				order = append(order, title)
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			// Heading outside the three sections; stop collecting.
			current = ""
			continue
		}

		if current == "" {
			continue
		}
		if item, ok := strings.CutPrefix(trimmed, "- "); ok {
			found[current] = append(found[current], strings.TrimSpace(item))
		} else if item, ok := strings.CutPrefix(trimmed, "* "); ok {
			found[current] = append(found[current], strings.TrimSpace(item))
		}
	}

	for i, title := range sectionTitles {
		items, ok := found[title]
		if !ok {
			return nil, fmt.Errorf("%w: missing section %q", ErrMalformedSummary, title)
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: section %q has no items", ErrMalformedSummary, title)
		}
		if order[i] != title {
			return nil, fmt.Errorf("%w: sections out of order", ErrMalformedSummary)
		}
	}

	return &sections{
		KeyPoints:   found[sectionTitles[0]],
		MainTopics:  found[sectionTitles[1]],
		ActionItems: found[sectionTitles[2]],
	}, nil
}

// matchSectionHeading reports whether a line is one of the required section
// headings, at any heading level, with or without a trailing colon.
func matchSectionHeading(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	text := strings.TrimSpace(strings.TrimLeft(line, "#"))
	text = strings.TrimSuffix(text, ":")
	text = strings.Trim(text, "*")

	for _, title := range sectionTitles {
		if strings.EqualFold(text, title) {
			return title, true
		}
	}
	return "", false
}

// renderSections produces the canonical summary markdown.
func renderSections(s *sections) string {
	var sb strings.Builder

	write := func(title string, items []string) {
		sb.WriteString("## " + title + "\n\n")
		for _, item := range items {
			sb.WriteString("- " + item + "\n")
		}
		sb.WriteString("\n")
	}

	write(sectionTitles[0], s.KeyPoints)
	write(sectionTitles[1], s.MainTopics)
	write(sectionTitles[2], s.ActionItems)

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
