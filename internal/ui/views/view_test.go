package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"suggestbox/internal/domain"
)

type testKeys struct{}

func (testKeys) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help"))}
}

func (k testKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func baseState() ViewState {
	return ViewState{
		Width:        120,
		Height:       60,
		TextInput:    "tra",
		InputFocused: true,
		HelpModel:    help.New(),
		Keys:         testKeys{},
	}
}

func TestRenderDropdownSections(t *testing.T) {
	state := baseState()
	state.DropdownOpen = true
	state.Sections = []Section{
		{Kind: SectionTopics, Title: "Filter by topic", Items: []Item{{Label: "Trade", Focused: true}, {Label: "Transport"}}},
		{Kind: SectionSearch, Items: []Item{{Label: `Search for "tra"`}}},
	}

	out := NewRenderer().Render(state)

	assert.Contains(t, out, "suggestbox")
	assert.Contains(t, out, "Filter by topic")
	assert.Contains(t, out, "Trade")
	assert.Contains(t, out, "Transport")
	assert.Contains(t, out, `Search for "tra"`)
	assert.Contains(t, out, "f1")
}

func TestRenderClosedDropdownHidesSections(t *testing.T) {
	state := baseState()
	state.Sections = []Section{
		{Kind: SectionPopular, Title: "Popular searches", Items: []Item{{Label: "Inflation"}}},
	}

	out := NewRenderer().Render(state)

	assert.NotContains(t, out, "Popular searches")
}

func TestRenderInlineFiltersWhileClosed(t *testing.T) {
	state := baseState()
	state.Inline = true
	state.Sections = []Section{
		{Kind: SectionCountries, Title: "Filter by country", Items: []Item{{Label: "🇫🇷 France", Selected: true}}},
		{Kind: SectionSearch, Items: []Item{{Label: `Search for "fra"`}}},
	}

	out := NewRenderer().Render(state)

	assert.Contains(t, out, "Filter by country")
	assert.Contains(t, out, "✓ 🇫🇷 France")
	assert.NotContains(t, out, "Search for")
	assert.Contains(t, out, "inline filters")
}

func TestRenderChipsAndResults(t *testing.T) {
	state := baseState()
	state.Chips = []Chip{{Label: "Trade", Focused: true}, {Label: "🇫🇷 France"}}
	state.ChipsFocused = true
	state.ResultsQuery = "trade"
	state.Results = []domain.Result{
		{Title: "Global trade outlook", Subtitle: "Quarterly review"},
		{Title: "Digital trade barriers"},
	}
	state.AutoRefresh = true

	out := NewRenderer().Render(state)

	assert.Contains(t, out, "Filters:")
	assert.Contains(t, out, "Trade ×")
	assert.Contains(t, out, "Results for “trade”")
	assert.Contains(t, out, "Global trade outlook")
	assert.Contains(t, out, "Quarterly review")
	assert.Contains(t, out, "auto refresh on")
}

func TestRenderNoResults(t *testing.T) {
	out := NewRenderer().Render(baseState())

	assert.Contains(t, out, "No results")
}

func TestRenderRowWraps(t *testing.T) {
	r := NewRenderer()
	items := make([]Item, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, Item{Label: "Agriculture"})
	}

	out := r.renderRow(items, 40)

	assert.Greater(t, strings.Count(out, "\n"), 1)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestRenderItemTruncatesLongLabels(t *testing.T) {
	r := NewRenderer()

	out := r.renderItem(Item{Label: strings.Repeat("x", 50)}, 20)

	assert.Contains(t, out, "…")
}

func TestRenderRecordsPanelLayout(t *testing.T) {
	r := NewRenderer()

	closed := baseState()
	closed.DropdownOpen = false
	r.Render(closed)
	boxOnly := r.Layout().Panel

	open := baseState()
	open.DropdownOpen = true
	open.Sections = []Section{{Kind: SectionTopics, Title: "Filter by topic", Items: []Item{{Label: "Trade"}}}}
	out := r.Render(open)
	panel := r.Layout().Panel

	assert.Equal(t, boxOnly.Top, panel.Top)
	assert.Greater(t, panel.Bottom, boxOnly.Bottom)
	assert.Equal(t, 2, panel.Left)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[panel.Top+1], "tra", "search box content sits inside the panel region")
	assert.True(t, panel.Contains(panel.Left, panel.Bottom))
	assert.False(t, panel.Contains(panel.Left, panel.Bottom+1))
	assert.False(t, panel.Contains(panel.Left-1, panel.Top))
}
