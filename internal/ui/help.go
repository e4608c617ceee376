package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{
		title: "Search box",
		entries: []helpEntry{
			{"type", "Show suggestions for the query"},
			{"enter", "Search for the query, or pick the highlighted suggestion"},
			{"esc", "Close the suggestions"},
			{"click outside", "Close the suggestions"},
			{"tab", "Move to the selected filters"},
		},
	},
	{
		title: "Suggestions",
		entries: []helpEntry{
			{"↑/↓", "Previous/next row (wraps around)"},
			{"←/→", "Previous/next item in the row"},
			{"enter", "Toggle a topic or country, or run the search"},
		},
	},
	{
		title: "Selected filters",
		entries: []helpEntry{
			{"←/→, h/l", "Move between filters"},
			{"del, space", "Remove the focused filter"},
			{"x", "Remove every filter"},
			{"tab, esc", "Back to the search box"},
		},
	},
	{
		title: "Settings",
		entries: []helpEntry{
			{"ctrl+r", "Toggle auto refresh of results"},
			{"ctrl+t", "Toggle inline topic and country suggestions"},
		},
	},
	{
		title: "Other",
		entries: []helpEntry{
			{"?", "Toggle the key summary (filters mode)"},
			{"f1", "Open this help"},
			{"ctrl+c", "Quit"},
		},
	},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, section := range helpSections {
		for _, entry := range section.entries {
			width = max(width, lipgloss.Width(entry.keys))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("suggestbox help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, entry := range section.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(entry.keys)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(entry.keys), pad, descStyle.Render(entry.desc)))
		}
		if i < len(helpSections)-1 {
			help.WriteString("\n")
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program reference
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
