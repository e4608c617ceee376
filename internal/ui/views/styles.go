package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	SearchBox      lipgloss.Style
	SearchBoxFocus lipgloss.Style
	Dropdown       lipgloss.Style
	SectionTitle   lipgloss.Style
	Suggestion     lipgloss.Style
	Selected       lipgloss.Style
	Focused        lipgloss.Style
	Chip           lipgloss.Style
	ChipFocused    lipgloss.Style
	ResultTitle    lipgloss.Style
	ResultSubtitle lipgloss.Style
	SettingOn      lipgloss.Style
	SettingOff     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchBoxFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		Suggestion: lipgloss.NewStyle().Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("78")), // green
		Focused: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Chip: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("236")),
		ChipFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("99")).
			Foreground(lipgloss.Color("230")),
		ResultTitle:    lipgloss.NewStyle().Bold(true),
		ResultSubtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SettingOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SettingOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
