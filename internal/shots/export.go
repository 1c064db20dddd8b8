package shots

import (
	"fmt"
	"strings"
)

// ExportText renders the table as plain text, one screenshot per block.
func ExportText(specs []Spec) string {
	lines := []string{}
	for i, s := range specs {
		lines = append(lines, fmt.Sprintf("%d. %s -> %s", i+1, s.Source, s.Output))
		if s.Headline != "" {
			lines = append(lines, "   "+s.Headline)
		}
		if s.Subtitle != "" {
			lines = append(lines, "   "+s.Subtitle)
		}
	}
	return strings.Join(lines, "\n")
}
