package navigation

import (
	"github.com/charmbracelet/log"

	"suggestbox/internal/eventbus"
)

// Service owns the dropdown open flag and the focus cursor
type Service struct {
	state *State
	bus   eventbus.EventBus
	timer CloseTimer
}

// NewService creates a new navigation service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// IsOpen reports whether the suggestion panel is visible
func (s *Service) IsOpen() bool {
	return s.state.Open
}

// GetCursor returns the cursor and whether it is set
func (s *Service) GetCursor() (Cursor, bool) {
	if s.state.Cursor == nil {
		return Cursor{}, false
	}
	return *s.state.Cursor, true
}

// Open shows the suggestion panel
func (s *Service) Open() {
	if s.state.Open {
		return
	}
	s.state.Open = true
	log.Debug("dropdown opened")
	s.bus.Publish(eventbus.DropdownOpenedEvent{})
}

// Close hides the suggestion panel and clears the cursor
func (s *Service) Close(reason string) {
	s.timer.Cancel()
	s.setCursor(nil)
	if !s.state.Open {
		return
	}
	s.state.Open = false
	log.Debug("dropdown closed", "reason", reason)
	s.bus.Publish(eventbus.DropdownClosedEvent{Reason: reason})
}

// ScheduleClose arms the deferred blur close and returns its token
func (s *Service) ScheduleClose() uint64 {
	return s.timer.Schedule()
}

// CancelClose drops a pending deferred close
func (s *Service) CancelClose() {
	s.timer.Cancel()
}

// ClosePending reports whether a deferred close is armed
func (s *Service) ClosePending() bool {
	return s.timer.Pending()
}

// FireClose closes the panel if token is the pending deferred close.
// Stale tokens are ignored.
func (s *Service) FireClose(token uint64) bool {
	if !s.timer.Fire(token) {
		return false
	}
	s.Close(ReasonBlur)
	return true
}

// MoveVertical moves the cursor to the next or previous non-empty category,
// wrapping around, and keeps the index as close to the old one as the new
// category allows
func (s *Service) MoveVertical(direction Direction, p Panel) {
	if !s.state.Open {
		return
	}
	s.Repair(p)

	ordering := p.Ordering()
	if len(ordering) == 0 {
		return
	}

	if s.state.Cursor == nil {
		first := ordering[0]
		if direction == DirectionUp {
			first = ordering[len(ordering)-1]
		}
		s.setCursor(&Cursor{Category: first, Index: 0})
		return
	}

	pos := indexOf(ordering, s.state.Cursor.Category)
	switch direction {
	case DirectionDown:
		pos = (pos + 1) % len(ordering)
	case DirectionUp:
		pos = (pos - 1 + len(ordering)) % len(ordering)
	default:
		return
	}

	next := ordering[pos]
	s.setCursor(&Cursor{
		Category: next,
		Index:    clamp(s.state.Cursor.Index, p.Length(next)),
	})
}

// MoveHorizontal steps the index within the current category. Moves past
// either end are ignored.
func (s *Service) MoveHorizontal(direction Direction, p Panel) {
	if !s.state.Open {
		return
	}
	s.Repair(p)
	if s.state.Cursor == nil {
		return
	}

	index := s.state.Cursor.Index
	switch direction {
	case DirectionRight:
		index++
	case DirectionLeft:
		index--
	default:
		return
	}

	if index < 0 || index >= p.Length(s.state.Cursor.Category) {
		return
	}
	s.setCursor(&Cursor{Category: s.state.Cursor.Category, Index: index})
}

// Activate resolves the entry under the cursor into an Effect and closes the
// panel. With no cursor, a non-empty query is submitted as is.
func (s *Service) Activate(p Panel) Effect {
	if !s.state.Open {
		return Effect{}
	}
	s.Repair(p)

	var effect Effect
	if s.state.Cursor == nil {
		if p.Query == "" {
			return Effect{}
		}
		effect = Effect{Kind: EffectSubmit, Query: p.Query}
	} else {
		c := *s.state.Cursor
		effect = categories[c.Category].activate(p, c.Index)
	}

	s.Close(ReasonActivate)
	return effect
}

// Repair nulls the cursor if it no longer points at a displayed entry
func (s *Service) Repair(p Panel) {
	if s.state.Cursor == nil {
		return
	}
	if !p.Valid(*s.state.Cursor) {
		log.Debug("cursor repaired", "category", s.state.Cursor.Category, "index", s.state.Cursor.Index)
		s.setCursor(nil)
	}
}

func (s *Service) setCursor(c *Cursor) {
	old := s.state.Cursor
	s.state.Cursor = c
	if old == nil && c == nil {
		return
	}
	if old != nil && c != nil && *old == *c {
		return
	}

	event := eventbus.CursorMovedEvent{Index: -1}
	if c != nil {
		event.Category = c.Category.String()
		event.Index = c.Index
	}
	s.bus.Publish(event)
}
