package selection

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

var (
	france = domain.Country{Name: "France", Flag: "🇫🇷"}
	kenya  = domain.Country{Name: "Kenya", Flag: "🇰🇪"}
)

func TestToggleTopicKeepsOrderAndUniqueness(t *testing.T) {
	s := NewService(nil)

	assert.True(t, s.ToggleTopic("Trade"))
	assert.True(t, s.ToggleTopic("Health"))
	assert.True(t, s.ToggleTopic("Energy"))
	assert.Equal(t, []domain.Topic{"Trade", "Health", "Energy"}, s.GetTopics())

	assert.False(t, s.ToggleTopic("Health"))
	assert.Equal(t, []domain.Topic{"Trade", "Energy"}, s.GetTopics())
	assert.False(t, s.IsTopicSelected("Health"))

	assert.True(t, s.ToggleTopic("Health"))
	assert.Equal(t, []domain.Topic{"Trade", "Energy", "Health"}, s.GetTopics())
}

func TestToggleCountryMatchesByName(t *testing.T) {
	s := NewService(nil)

	s.ToggleCountry(france)
	s.ToggleCountry(kenya)
	assert.True(t, s.IsCountrySelected("France"))

	assert.False(t, s.ToggleCountry(domain.Country{Name: "France"}))
	assert.Equal(t, []domain.Country{kenya}, s.GetCountries())
}

func TestGettersReturnCopies(t *testing.T) {
	s := NewService(nil)
	s.ToggleTopic("Trade")

	topics := s.GetTopics()
	topics[0] = "Changed"

	assert.Equal(t, []domain.Topic{"Trade"}, s.GetTopics())
}

func TestSelectionChangedPublished(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	s.ToggleTopic("Trade")
	s.ToggleCountry(france)
	s.DeselectAll()
	s.DeselectAll()

	require.Len(t, bus.events, 3)
	assert.Equal(t, eventbus.SelectionChangedEvent{
		Topics:    []domain.Topic{"Trade"},
		Countries: []domain.Country{france},
	}, bus.events[1])
	last := bus.events[2].(eventbus.SelectionChangedEvent)
	assert.Empty(t, last.Topics)
	assert.Empty(t, last.Countries)
	assert.False(t, s.HasSelection())
}
