package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderSections renders suggestion sections one below the other
func (r *Renderer) renderSections(sections []Section, width int) string {
	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		var b strings.Builder
		if section.Title != "" {
			b.WriteString(r.styles.SectionTitle.Render(section.Title))
			b.WriteString("\n")
		}
		b.WriteString(r.renderRow(section.Items, width))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// renderRow lays items out left to right, wrapping at width
func (r *Renderer) renderRow(items []Item, width int) string {
	if width <= 0 {
		width = 76
	}

	var lines []string
	var line []string
	lineWidth := 0
	for _, item := range items {
		rendered := r.renderItem(item, width)
		w := lipgloss.Width(rendered)
		if len(line) > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line = nil
			lineWidth = 0
		}
		if len(line) > 0 {
			lineWidth++
		}
		line = append(line, rendered)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderItem(item Item, width int) string {
	label := item.Label
	if item.Selected {
		label = "✓ " + label
	}
	label = runewidth.Truncate(label, max(width-2, 1), "…")

	switch {
	case item.Focused:
		return r.styles.Focused.Render(label)
	case item.Selected:
		return r.styles.Selected.Render(label)
	default:
		return r.styles.Suggestion.Render(label)
	}
}
