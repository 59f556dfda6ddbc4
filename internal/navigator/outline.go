package navigator

import (
	"fmt"
	"strings"

	"github.com/colonyops/bluebook/internal/core/bluebook"
)

// Outline renders a document's index as markdown: one heading per part with
// its sections and subsections as nested lists.
func Outline(title string, s bluebook.DocumentStructure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)

	if len(s.Parts) == 0 {
		b.WriteString("\n_No parts indexed._\n")
		return b.String()
	}

	for _, part := range s.Parts {
		fmt.Fprintf(&b, "\n## %s (p. %d)\n", part.Title, part.Page)

		sections := s.SectionsOf(part.Title)
		if len(sections) == 0 {
			continue
		}
		b.WriteString("\n")
		for _, sec := range sections {
			fmt.Fprintf(&b, "- %s (p. %d)\n", sec.Title, sec.Page)
			for _, sub := range sec.Subsections {
				fmt.Fprintf(&b, "  - %s (p. %d)\n", sub.Title, sub.PageNumber)
			}
		}
	}

	return b.String()
}
