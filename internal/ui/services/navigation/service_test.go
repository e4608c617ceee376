package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) count(t eventbus.EventType) int {
	n := 0
	for _, e := range b.events {
		if e.Type() == t {
			n++
		}
	}
	return n
}

var france = domain.Country{Name: "France", Flag: "🇫🇷"}

func popularPanel() Panel {
	return Panel{PopularSearches: []string{"Climate change", "Inflation", "Food security"}}
}

func topicCountryPanel() Panel {
	return Panel{
		Topics:       []domain.Topic{"Trade"},
		Countries:    []domain.Country{france},
		HasSelection: true,
	}
}

func openService(t *testing.T) (*Service, *recordingBus) {
	t.Helper()
	bus := &recordingBus{}
	s := NewService(bus)
	s.Open()
	return s, bus
}

func requireCursor(t *testing.T, s *Service, category Category, index int) {
	t.Helper()
	c, ok := s.GetCursor()
	require.True(t, ok, "cursor should be set")
	assert.Equal(t, Cursor{Category: category, Index: index}, c)
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		name  string
		panel Panel
		want  []Category
	}{
		{"empty query no selection shows popular", popularPanel(), []Category{CategoryPopularSearch}},
		{"nothing to show", Panel{}, []Category{}},
		{
			"query adds search action",
			Panel{Topics: []domain.Topic{"Trade"}, Query: "tra", PopularSearches: []string{"x"}},
			[]Category{CategoryTopic, CategorySearch},
		},
		{
			"selection hides popular searches",
			Panel{Countries: []domain.Country{france}, HasSelection: true, PopularSearches: []string{"x"}},
			[]Category{CategoryCountry},
		},
		{
			"all but popular",
			Panel{Topics: []domain.Topic{"Trade"}, Countries: []domain.Country{france}, Query: "fr"},
			[]Category{CategoryTopic, CategoryCountry, CategorySearch},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.panel.Ordering())
		})
	}
}

func TestMoveVerticalFromNullGoesToFirstCategory(t *testing.T) {
	s, _ := openService(t)
	_, ok := s.GetCursor()
	require.False(t, ok)

	s.MoveVertical(DirectionDown, popularPanel())

	requireCursor(t, s, CategoryPopularSearch, 0)
}

func TestMoveVerticalUpFromNullGoesToLastCategory(t *testing.T) {
	s, _ := openService(t)
	p := Panel{Topics: []domain.Topic{"Trade"}, Query: "tra"}

	s.MoveVertical(DirectionUp, p)

	requireCursor(t, s, CategorySearch, 0)
}

func TestMoveVerticalWrapsBetweenTwoCategories(t *testing.T) {
	s, _ := openService(t)
	p := topicCountryPanel()

	s.MoveVertical(DirectionDown, p)
	requireCursor(t, s, CategoryTopic, 0)

	s.MoveVertical(DirectionDown, p)
	requireCursor(t, s, CategoryCountry, 0)

	s.MoveVertical(DirectionDown, p)
	requireCursor(t, s, CategoryTopic, 0)

	s.MoveVertical(DirectionUp, p)
	requireCursor(t, s, CategoryCountry, 0)
}

func TestMoveVerticalCyclicClosure(t *testing.T) {
	p := Panel{
		Topics:    []domain.Topic{"Trade", "Transport", "Travel"},
		Countries: []domain.Country{france},
		Query:     "tra",
	}
	ordering := p.Ordering()
	require.Len(t, ordering, 3)

	for _, start := range ordering {
		for _, dir := range []Direction{DirectionDown, DirectionUp} {
			s, _ := openService(t)
			s.state.Cursor = &Cursor{Category: start, Index: 0}

			for i := 0; i < len(ordering); i++ {
				s.MoveVertical(dir, p)
			}

			c, ok := s.GetCursor()
			require.True(t, ok)
			assert.Equal(t, start, c.Category, "start %s dir %s", start, dir)
		}
	}
}

func TestMoveVerticalClampsIndexIntoShorterCategory(t *testing.T) {
	s, _ := openService(t)
	p := Panel{
		Topics:    []domain.Topic{"Trade", "Transport", "Travel"},
		Countries: []domain.Country{france},
		Query:     "tra",
	}
	s.state.Cursor = &Cursor{Category: CategoryTopic, Index: 2}

	s.MoveVertical(DirectionDown, p)
	requireCursor(t, s, CategoryCountry, 0)

	s.MoveVertical(DirectionDown, p)
	requireCursor(t, s, CategorySearch, 0)
}

func TestMoveVerticalKeepsColumnWhenItFits(t *testing.T) {
	s, _ := openService(t)
	p := Panel{
		Topics:    []domain.Topic{"Trade", "Transport", "Travel"},
		Countries: []domain.Country{france, {Name: "Kenya"}, {Name: "Chile"}},
		Query:     "a",
	}
	s.state.Cursor = &Cursor{Category: CategoryTopic, Index: 2}

	s.MoveVertical(DirectionDown, p)

	requireCursor(t, s, CategoryCountry, 2)
}

func TestMovesAreIgnoredWhileClosed(t *testing.T) {
	s := NewService(&recordingBus{})

	s.MoveVertical(DirectionDown, popularPanel())
	s.MoveHorizontal(DirectionRight, popularPanel())

	_, ok := s.GetCursor()
	assert.False(t, ok)
	assert.Equal(t, Effect{}, s.Activate(popularPanel()))
}

func TestMoveVerticalWithEmptyOrderingIsNoop(t *testing.T) {
	s, _ := openService(t)

	s.MoveVertical(DirectionDown, Panel{})

	_, ok := s.GetCursor()
	assert.False(t, ok)
}

func TestMoveHorizontal(t *testing.T) {
	s, _ := openService(t)
	p := Panel{Topics: []domain.Topic{"Trade", "Transport"}, Query: "tra"}

	s.MoveHorizontal(DirectionRight, p)
	_, ok := s.GetCursor()
	require.False(t, ok, "horizontal move needs a cursor")

	s.MoveVertical(DirectionDown, p)
	s.MoveHorizontal(DirectionRight, p)
	requireCursor(t, s, CategoryTopic, 1)

	s.MoveHorizontal(DirectionRight, p)
	requireCursor(t, s, CategoryTopic, 1)

	s.MoveHorizontal(DirectionLeft, p)
	s.MoveHorizontal(DirectionLeft, p)
	requireCursor(t, s, CategoryTopic, 0)
}

func TestMoveHorizontalSearchIsNoop(t *testing.T) {
	s, _ := openService(t)
	p := Panel{Query: "zzz"}

	s.MoveVertical(DirectionDown, p)
	requireCursor(t, s, CategorySearch, 0)

	s.MoveHorizontal(DirectionRight, p)
	requireCursor(t, s, CategorySearch, 0)
}

func TestMoveHorizontalStepsThroughPopularSearches(t *testing.T) {
	s, _ := openService(t)
	p := popularPanel()

	s.MoveVertical(DirectionDown, p)
	s.MoveHorizontal(DirectionRight, p)
	s.MoveHorizontal(DirectionRight, p)
	s.MoveHorizontal(DirectionRight, p)

	requireCursor(t, s, CategoryPopularSearch, 2)
}

func TestActivate(t *testing.T) {
	tests := []struct {
		name   string
		panel  Panel
		cursor *Cursor
		want   Effect
	}{
		{
			name:   "topic",
			panel:  topicCountryPanel(),
			cursor: &Cursor{Category: CategoryTopic, Index: 0},
			want:   Effect{Kind: EffectToggleTopic, Topic: "Trade"},
		},
		{
			name:   "country",
			panel:  topicCountryPanel(),
			cursor: &Cursor{Category: CategoryCountry, Index: 0},
			want:   Effect{Kind: EffectToggleCountry, Country: france},
		},
		{
			name:   "search",
			panel:  Panel{Query: "budget"},
			cursor: &Cursor{Category: CategorySearch, Index: 0},
			want:   Effect{Kind: EffectSubmit, Query: "budget"},
		},
		{
			name:   "popular search",
			panel:  popularPanel(),
			cursor: &Cursor{Category: CategoryPopularSearch, Index: 1},
			want:   Effect{Kind: EffectPopularSearch, Query: "Inflation"},
		},
		{
			name:  "no cursor submits query",
			panel: Panel{Query: "budget"},
			want:  Effect{Kind: EffectSubmit, Query: "budget"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, bus := openService(t)
			s.state.Cursor = tt.cursor

			got := s.Activate(tt.panel)

			assert.Equal(t, tt.want, got)
			assert.False(t, s.IsOpen())
			_, ok := s.GetCursor()
			assert.False(t, ok)
			assert.Equal(t, 1, bus.count(eventbus.EventDropdownClosed))
		})
	}
}

func TestActivateWithoutCursorOrQueryKeepsPanelOpen(t *testing.T) {
	s, _ := openService(t)

	got := s.Activate(popularPanel())

	assert.Equal(t, EffectNone, got.Kind)
	assert.True(t, s.IsOpen())
}

func TestActivateRepairsDanglingCursor(t *testing.T) {
	s, _ := openService(t)
	s.state.Cursor = &Cursor{Category: CategoryTopic, Index: 3}

	got := s.Activate(Panel{Topics: []domain.Topic{"Trade"}, Query: "tra"})

	assert.Equal(t, Effect{Kind: EffectSubmit, Query: "tra"}, got)
}

func TestRepair(t *testing.T) {
	s, _ := openService(t)
	s.state.Cursor = &Cursor{Category: CategoryPopularSearch, Index: 0}

	s.Repair(popularPanel())
	requireCursor(t, s, CategoryPopularSearch, 0)

	// typing removes the popular searches category
	s.Repair(Panel{Query: "x", PopularSearches: popularPanel().PopularSearches})
	_, ok := s.GetCursor()
	assert.False(t, ok)
}

func TestCloseAlwaysClearsCursor(t *testing.T) {
	for _, reason := range []string{ReasonBlur, ReasonDismiss, ReasonClickAway} {
		s, bus := openService(t)
		s.MoveVertical(DirectionDown, popularPanel())

		s.Close(reason)

		assert.False(t, s.IsOpen())
		_, ok := s.GetCursor()
		assert.False(t, ok)
		require.Equal(t, 1, bus.count(eventbus.EventDropdownClosed))
	}
}

func TestOpenAndClosePublishOnlyOnTransitions(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	s.Close(ReasonDismiss)
	s.Open()
	s.Open()
	s.Close(ReasonDismiss)
	s.Close(ReasonDismiss)

	assert.Equal(t, 1, bus.count(eventbus.EventDropdownOpened))
	assert.Equal(t, 1, bus.count(eventbus.EventDropdownClosed))
}

func TestCursorEventsPublished(t *testing.T) {
	s, bus := openService(t)

	s.MoveVertical(DirectionDown, popularPanel())
	s.MoveHorizontal(DirectionLeft, popularPanel())
	s.Close(ReasonDismiss)

	var moves []eventbus.CursorMovedEvent
	for _, e := range bus.events {
		if ev, ok := e.(eventbus.CursorMovedEvent); ok {
			moves = append(moves, ev)
		}
	}
	assert.Equal(t, []eventbus.CursorMovedEvent{
		{Category: "popularSearch", Index: 0},
		{Index: -1},
	}, moves)
}

func TestDeferredClose(t *testing.T) {
	s, _ := openService(t)
	s.MoveVertical(DirectionDown, popularPanel())

	token := s.ScheduleClose()
	assert.True(t, s.IsOpen(), "close is deferred")
	assert.True(t, s.ClosePending())

	require.True(t, s.FireClose(token))
	assert.False(t, s.IsOpen())
	_, ok := s.GetCursor()
	assert.False(t, ok)
}

func TestDeferredCloseCancelled(t *testing.T) {
	s, _ := openService(t)

	token := s.ScheduleClose()
	s.CancelClose()

	assert.False(t, s.FireClose(token))
	assert.True(t, s.IsOpen())
}

func TestDeferredCloseSupersededByActivate(t *testing.T) {
	s, _ := openService(t)
	s.MoveVertical(DirectionDown, popularPanel())

	token := s.ScheduleClose()
	effect := s.Activate(popularPanel())
	require.Equal(t, EffectPopularSearch, effect.Kind)

	s.Open()
	assert.False(t, s.FireClose(token), "stale token must not close the reopened panel")
	assert.True(t, s.IsOpen())
}

func TestCloseTimer(t *testing.T) {
	var timer CloseTimer
	assert.False(t, timer.Fire(0))

	first := timer.Schedule()
	second := timer.Schedule()
	assert.False(t, timer.Fire(first), "rescheduling invalidates the earlier token")
	assert.True(t, timer.Fire(second))
	assert.False(t, timer.Fire(second), "a token fires once")
	assert.False(t, timer.Pending())

	third := timer.Schedule()
	timer.Cancel()
	assert.False(t, timer.Fire(third))
}
