// Package relations renders the cached relationship view for the
// terminal.
package relations

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

type RenderOptions struct {
	Title string
}

// Render formats the cached records, pending entries first.
func Render(records []domain.Relationship, opts RenderOptions) string {
	return renderView(records, opts, newStyles())
}

func renderView(records []domain.Relationship, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "Relationships"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("cached records: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No cached relationships."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	ordered := make([]domain.Relationship, len(records))
	copy(ordered, records)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Requested != ordered[j].Requested {
			return ordered[i].Requested
		}
		return ordered[i].SubjectID < ordered[j].SubjectID
	})

	for _, record := range ordered {
		lines = append(lines, renderRecord(record, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.Relationship, s styles) string {
	label := stateLabel(record)
	style := s.none
	switch {
	case record.Requested:
		style = s.requested
	case record.Following:
		style = s.following
	}

	return fmt.Sprintf("%s %s",
		s.subject.Render(fmt.Sprintf("user %d", record.SubjectID)),
		style.Render(label),
	)
}

func stateLabel(record domain.Relationship) string {
	switch {
	case record.Requested:
		return "requested"
	case record.Following:
		return "following"
	default:
		return "not following"
	}
}
