package search

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

func TestSetQuery(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	assert.True(t, s.SetQuery("tra"))
	assert.False(t, s.SetQuery("tra"))
	s.ClearQuery()

	assert.Equal(t, "", s.GetQuery())
	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.QueryChangedEvent{Query: "tra"},
		eventbus.QueryChangedEvent{Query: ""},
	}, bus.events)
}

func TestSubmit(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)
	s.SetQuery("budget")

	s.Submit([]domain.Topic{"Trade"}, nil, false)

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.SearchSubmittedEvent{
		Seq:    1,
		Query:  "budget",
		Topics: []domain.Topic{"Trade"},
	}, bus.events[1])
	assert.Equal(t, "budget", s.LastSubmitted())
	assert.Equal(t, 1, s.Submissions())
}

func TestSubmitSequenceIncludesAutoRefreshes(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)
	assert.Equal(t, uint64(0), s.Seq())

	s.Submit(nil, nil, true)
	s.Submit(nil, nil, false)
	s.Submit(nil, nil, true)

	assert.Equal(t, uint64(3), s.Seq())
	require.Len(t, bus.events, 3)
	for i, e := range bus.events {
		assert.Equal(t, uint64(i+1), e.(eventbus.SearchSubmittedEvent).Seq)
	}
}

func TestAutoSubmitIsNotCounted(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	s.Submit(nil, nil, true)

	assert.Equal(t, 0, s.Submissions())
	require.Len(t, bus.events, 1)
	assert.True(t, bus.events[0].(eventbus.SearchSubmittedEvent).Auto)
}
