package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

func (r *Renderer) renderResults(state ViewState, width int) string {
	var b strings.Builder

	heading := "Results"
	if state.ResultsQuery != "" {
		heading = fmt.Sprintf("Results for “%s”", state.ResultsQuery)
	}
	b.WriteString(r.styles.SectionTitle.Render(heading))
	if state.Refreshing {
		b.WriteString(r.styles.Dim.Render("  refreshing…"))
	}
	b.WriteString("\n")

	if len(state.Results) == 0 {
		b.WriteString(r.styles.Dim.Render("No results. Try another keyword or remove a filter."))
		return b.String()
	}

	for i, result := range state.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.styles.ResultTitle.Render(runewidth.Truncate(result.Title, width, "…")))
		if result.Subtitle != "" {
			b.WriteString("\n")
			b.WriteString(r.styles.ResultSubtitle.Render(runewidth.Truncate(result.Subtitle, width, "…")))
		}
	}
	return b.String()
}
