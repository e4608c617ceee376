package viewmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbox/internal/domain"
	"suggestbox/internal/ui/coordinator"
	"suggestbox/internal/ui/input/types"
	"suggestbox/internal/ui/services/navigation"
	"suggestbox/internal/ui/state"
	"suggestbox/internal/ui/views"
)

var france = domain.Country{Name: "France", Flag: "🇫🇷"}

func catalog() domain.Catalog {
	return domain.Catalog{
		Topics:          []domain.Topic{"Health", "Trade", "Transport"},
		Countries:       []domain.Country{france},
		PopularSearches: []string{"Climate change", "Inflation"},
	}
}

func TestBuildSectionsFollowsOrderingAndCursor(t *testing.T) {
	c := coordinator.NewCoordinator(nil, catalog(), coordinator.DefaultSettings())
	c.ToggleTopic("Health")
	c.Focus()
	c.SetQuery("tra")
	c.MoveVertical(navigation.DirectionDown)
	c.MoveHorizontal(navigation.DirectionRight)

	sections := BuildSections(c.Snapshot())

	require.Len(t, sections, 2)
	assert.Equal(t, views.SectionTopics, sections[0].Kind)
	assert.Equal(t, []views.Item{
		{Label: "Health", Selected: true},
		{Label: "Trade", Focused: true},
		{Label: "Transport"},
	}, sections[0].Items)
	assert.Equal(t, views.SectionSearch, sections[1].Kind)
	assert.Equal(t, `🔎 Search for "tra"`, sections[1].Items[0].Label)
}

func TestBuildSectionsPopularSearches(t *testing.T) {
	c := coordinator.NewCoordinator(nil, catalog(), coordinator.DefaultSettings())
	c.Focus()

	sections := BuildSections(c.Snapshot())

	require.Len(t, sections, 1)
	assert.Equal(t, views.SectionPopular, sections[0].Kind)
	assert.Len(t, sections[0].Items, 2)
}

func TestBuildChips(t *testing.T) {
	c := coordinator.NewCoordinator(nil, catalog(), coordinator.DefaultSettings())
	c.ToggleCountry(france)
	c.ToggleTopic("Trade")

	chips := BuildChips(c.Snapshot(), 1)

	assert.Equal(t, []views.Chip{
		{Label: "Trade"},
		{Label: "🇫🇷 France", Focused: true},
	}, chips)
}

func TestBuildViewState(t *testing.T) {
	appState := state.NewAppState(true, false)
	appState.Width = 100
	vm := NewViewModel(appState, types.DefaultKeyMap())
	c := coordinator.NewCoordinator(nil, catalog(), coordinator.DefaultSettings())
	c.Focus()

	vs := vm.BuildViewState(c.Snapshot(), "", false, "search")

	assert.True(t, vs.InputFocused)
	assert.True(t, vs.DropdownOpen)
	assert.True(t, vs.Inline)
	assert.True(t, vs.AutoRefresh)
	assert.Equal(t, 100, vs.Width)
	assert.Equal(t, "search", vs.ModeName)
}
