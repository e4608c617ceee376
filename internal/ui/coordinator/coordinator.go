package coordinator

import (
	"github.com/charmbracelet/log"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
	"suggestbox/internal/ui/logic"
	"suggestbox/internal/ui/services/navigation"
	"suggestbox/internal/ui/services/search"
	"suggestbox/internal/ui/services/selection"
)

// Settings tune the engine
type Settings struct {
	AutoRefresh bool
	Filter      logic.FilterOptions
}

// DefaultSettings returns the stock settings
func DefaultSettings() Settings {
	return Settings{Filter: logic.DefaultFilterOptions()}
}

// Snapshot is a read-only copy of everything the views need
type Snapshot struct {
	Query           string
	Candidates      logic.Candidates
	PopularSearches []string
	Ordering        []navigation.Category
	Cursor          *navigation.Cursor
	Open            bool
	Focused         bool
	Topics          []domain.Topic
	Countries       []domain.Country
}

// Coordinator manages all UI services and their interactions. It is the
// single reducer the host drives: every method runs to completion on the
// caller's goroutine.
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Selection  *selection.Service
	Search     *search.Service

	// Dependencies
	bus      eventbus.EventBus
	filter   *logic.SuggestionFilter
	catalog  domain.Catalog
	settings Settings

	focused bool
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus eventbus.EventBus, catalog domain.Catalog, settings Settings) *Coordinator {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Coordinator{
		Navigation: navigation.NewService(bus),
		Selection:  selection.NewService(bus),
		Search:     search.NewService(bus),
		bus:        bus,
		filter:     logic.NewSuggestionFilter(catalog, settings.Filter),
		catalog:    catalog,
		settings:   settings,
	}
}

// Settings returns the active settings
func (c *Coordinator) Settings() Settings {
	return c.settings
}

// SetAutoRefresh switches auto refresh on or off
func (c *Coordinator) SetAutoRefresh(enabled bool) {
	c.settings.AutoRefresh = enabled
	if enabled {
		c.refresh(true)
	}
}

// Candidates derives the displayed suggestion lists
func (c *Coordinator) Candidates() logic.Candidates {
	return c.filter.Derive(c.Search.GetQuery(), c.Selection.GetTopics(), c.Selection.GetCountries())
}

// Panel describes the displayed suggestions for the navigator
func (c *Coordinator) Panel() navigation.Panel {
	candidates := c.Candidates()
	return navigation.Panel{
		Topics:          candidates.Topics,
		Countries:       candidates.Countries,
		Query:           c.Search.GetQuery(),
		PopularSearches: c.catalog.PopularSearches,
		HasSelection:    c.Selection.HasSelection(),
	}
}

// Focused reports whether the search box has input focus
func (c *Coordinator) Focused() bool {
	return c.focused
}

// Focus gives the search box focus, opens the panel and cancels a pending
// blur close
func (c *Coordinator) Focus() {
	c.focused = true
	c.Navigation.CancelClose()
	c.Navigation.Open()
}

// Blur takes focus away from the search box. The close is deferred: the
// returned token must be handed back to BlurElapsed after the grace delay.
// ok is false when the panel is already closed.
func (c *Coordinator) Blur() (token uint64, ok bool) {
	c.focused = false
	if !c.Navigation.IsOpen() {
		return 0, false
	}
	return c.Navigation.ScheduleClose(), true
}

// BlurElapsed applies a deferred blur close unless it was superseded
func (c *Coordinator) BlurElapsed(token uint64) bool {
	return c.Navigation.FireClose(token)
}

// SetQuery replaces the search box content. Non-empty text opens the panel;
// empty text closes it only while the search box is unfocused.
func (c *Coordinator) SetQuery(query string) {
	if !c.Search.SetQuery(query) {
		return
	}

	if query != "" {
		c.Navigation.Open()
	} else if !c.focused {
		c.Navigation.Close(navigation.ReasonCleared)
	}
	c.Navigation.Repair(c.Panel())

	if c.settings.AutoRefresh {
		c.refresh(true)
	}
}

// Dismiss closes the panel (Escape)
func (c *Coordinator) Dismiss() {
	c.Navigation.Close(navigation.ReasonDismiss)
}

// ClickAway closes the panel after a click outside of it
func (c *Coordinator) ClickAway() {
	c.Navigation.Close(navigation.ReasonClickAway)
}

// MoveVertical moves the cursor between categories
func (c *Coordinator) MoveVertical(dir navigation.Direction) {
	c.Navigation.MoveVertical(dir, c.Panel())
}

// MoveHorizontal moves the cursor within a category
func (c *Coordinator) MoveHorizontal(dir navigation.Direction) {
	c.Navigation.MoveHorizontal(dir, c.Panel())
}

// Activate performs the action under the cursor and closes the panel
func (c *Coordinator) Activate() navigation.Effect {
	c.Navigation.CancelClose()
	effect := c.Navigation.Activate(c.Panel())
	c.apply(effect)
	return effect
}

// Submit handles Enter. An open panel activates the cursor; a closed one
// submits the query as typed. An open panel with neither cursor nor query
// closes and refreshes the results for the selected filters.
func (c *Coordinator) Submit() navigation.Effect {
	if c.Navigation.IsOpen() {
		_, hasCursor := c.Navigation.GetCursor()
		if hasCursor || c.Search.GetQuery() != "" {
			return c.Activate()
		}
		c.Navigation.Close(navigation.ReasonSubmit)
	}
	c.submit()
	return navigation.Effect{Kind: navigation.EffectSubmit, Query: c.Search.GetQuery()}
}

// ToggleTopic toggles a topic from outside the panel, e.g. a selected
// filter chip
func (c *Coordinator) ToggleTopic(topic domain.Topic) {
	c.Selection.ToggleTopic(topic)
	c.afterToggle()
}

// ToggleCountry toggles a country from outside the panel
func (c *Coordinator) ToggleCountry(country domain.Country) {
	c.Selection.ToggleCountry(country)
	c.afterToggle()
}

// ClearSelection removes every selected filter
func (c *Coordinator) ClearSelection() {
	if !c.Selection.HasSelection() {
		return
	}
	c.Selection.DeselectAll()
	c.Navigation.Repair(c.Panel())
	if c.settings.AutoRefresh {
		c.refresh(true)
	}
}

// Snapshot copies the engine state for rendering
func (c *Coordinator) Snapshot() Snapshot {
	panel := c.Panel()
	snap := Snapshot{
		Query:           panel.Query,
		Candidates:      logic.Candidates{Topics: panel.Topics, Countries: panel.Countries},
		PopularSearches: c.catalog.PopularSearches,
		Ordering:        panel.Ordering(),
		Open:            c.Navigation.IsOpen(),
		Focused:         c.focused,
		Topics:          c.Selection.GetTopics(),
		Countries:       c.Selection.GetCountries(),
	}
	if cursor, ok := c.Navigation.GetCursor(); ok {
		snap.Cursor = &cursor
	}
	return snap
}

func (c *Coordinator) apply(effect navigation.Effect) {
	switch effect.Kind {
	case navigation.EffectToggleTopic:
		c.Selection.ToggleTopic(effect.Topic)
		c.focused = true
		c.afterToggle()
	case navigation.EffectToggleCountry:
		c.Selection.ToggleCountry(effect.Country)
		c.focused = true
		c.afterToggle()
	case navigation.EffectSubmit:
		c.submit()
	case navigation.EffectPopularSearch:
		c.Search.SetQuery(effect.Query)
		c.submit()
	}
}

// afterToggle clears the query and refreshes once
func (c *Coordinator) afterToggle() {
	c.Search.ClearQuery()
	c.Navigation.Repair(c.Panel())
	if c.settings.AutoRefresh {
		c.refresh(true)
	}
}

func (c *Coordinator) submit() {
	if c.settings.AutoRefresh {
		// results already follow every change
		log.Debug("submit with auto refresh on", "query", c.Search.GetQuery())
		c.refresh(true)
		return
	}
	c.Search.Submit(c.Selection.GetTopics(), c.Selection.GetCountries(), false)
}

func (c *Coordinator) refresh(auto bool) {
	c.Search.Submit(c.Selection.GetTopics(), c.Selection.GetCountries(), auto)
}
