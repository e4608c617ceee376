package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"suggestbox/internal/domain"
)

// SectionKind identifies how a suggestion section is laid out
type SectionKind int

const (
	SectionTopics SectionKind = iota
	SectionCountries
	SectionSearch
	SectionPopular
)

// Item is one rendered suggestion
type Item struct {
	Label    string
	Selected bool
	Focused  bool
}

// Section is one category of the suggestion panel
type Section struct {
	Kind  SectionKind
	Title string
	Items []Item
}

// Chip is a selected filter shown under the search box
type Chip struct {
	Label   string
	Focused bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	TextInput    string // rendered search box content
	InputFocused bool

	DropdownOpen bool
	Inline       bool      // topic/country sections render under the search box
	Sections     []Section // non-empty sections in navigation order

	Chips        []Chip
	ChipsFocused bool

	Results      []domain.Result
	ResultsQuery string
	Refreshing   bool

	AutoRefresh   bool
	StatusMessage string
	ModeName      string

	HelpModel help.Model
	Keys      help.KeyMap
	ShowHelp  bool
}

// Region is a rectangle of screen cells, bounds inclusive
type Region struct {
	Top, Bottom int
	Left, Right int
}

// Contains reports whether the cell at x, y lies inside the region
func (r Region) Contains(x, y int) bool {
	return y >= r.Top && y <= r.Bottom && x >= r.Left && x <= r.Right
}

// Layout records where the last render placed the search box and its
// suggestion panel
type Layout struct {
	Panel Region
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	layout Layout
}

// Layout returns the geometry of the last Render call
func (r *Renderer) Layout() Layout {
	return r.layout
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	innerWidth := termWidth - 4 // Account for main container padding
	padTop, padLeft := r.styles.Main.GetPaddingTop(), r.styles.Main.GetPaddingLeft()

	content.WriteString(r.renderTitle(state, innerWidth))
	content.WriteString("\n\n")

	// Search box
	boxStyle := r.styles.SearchBox
	if state.InputFocused {
		boxStyle = r.styles.SearchBoxFocus
	}
	panelTop := padTop + strings.Count(content.String(), "\n")
	box := boxStyle.Width(max(innerWidth-2, 20)).Render("🔎 " + state.TextInput)
	content.WriteString(box)
	content.WriteString("\n")
	panel := Region{
		Top:    panelTop,
		Bottom: panelTop + lipgloss.Height(box) - 1,
		Left:   padLeft,
		Right:  padLeft + lipgloss.Width(box) - 1,
	}

	var inline, dropdown []Section
	for _, section := range state.Sections {
		if state.Inline && (section.Kind == SectionTopics || section.Kind == SectionCountries) {
			inline = append(inline, section)
			continue
		}
		if state.DropdownOpen {
			dropdown = append(dropdown, section)
		}
	}

	if len(dropdown) > 0 {
		rendered := r.styles.Dropdown.Width(max(innerWidth-2, 20)).Render(r.renderSections(dropdown, innerWidth-4))
		content.WriteString(rendered)
		content.WriteString("\n")
		panel.Bottom += lipgloss.Height(rendered)
		panel.Right = max(panel.Right, padLeft+lipgloss.Width(rendered)-1)
	}
	r.layout = Layout{Panel: panel}
	if len(inline) > 0 {
		content.WriteString(r.renderSections(inline, innerWidth))
		content.WriteString("\n")
	}

	if len(state.Chips) > 0 {
		content.WriteString("\n")
		content.WriteString(r.renderChips(state))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderResults(state, innerWidth))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	if state.Keys != nil {
		content.WriteString("\n\n")
		if state.ShowHelp {
			content.WriteString(state.HelpModel.FullHelpView(state.Keys.FullHelp()))
		} else {
			content.WriteString(state.HelpModel.ShortHelpView(state.Keys.ShortHelp()))
		}
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("suggestbox")

	refresh := r.styles.SettingOff.Render("auto refresh off")
	if state.AutoRefresh {
		refresh = r.styles.SettingOn.Render("auto refresh on")
	}
	layout := r.styles.SettingOff.Render("dropdown filters")
	if state.Inline {
		layout = r.styles.SettingOn.Render("inline filters")
	}
	right := fmt.Sprintf("%s  %s", refresh, layout)
	if state.ModeName != "" {
		right = fmt.Sprintf("%s  %s", r.styles.Dim.Render("["+state.ModeName+"]"), right)
	}

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderChips(state ViewState) string {
	parts := make([]string, 0, len(state.Chips)+1)
	parts = append(parts, r.styles.Dim.Render("Filters:"))
	for _, chip := range state.Chips {
		style := r.styles.Chip
		if state.ChipsFocused && chip.Focused {
			style = r.styles.ChipFocused
		}
		parts = append(parts, style.Render(chip.Label+" ×"))
	}
	return strings.Join(parts, " ")
}
