package selection

import (
	"slices"

	"github.com/charmbracelet/log"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
)

// Service handles selection logic
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// ToggleTopic adds the topic if absent and removes it otherwise.
// Returns true when the topic is selected afterwards.
func (s *Service) ToggleTopic(topic domain.Topic) bool {
	i := slices.Index(s.state.Topics, topic)
	selected := i < 0
	if selected {
		s.state.Topics = append(s.state.Topics, topic)
	} else {
		s.state.Topics = slices.Delete(slices.Clone(s.state.Topics), i, i+1)
	}

	log.Debug("topic toggled", "topic", topic, "selected", selected)
	s.publish()
	return selected
}

// ToggleCountry adds the country if absent and removes it otherwise.
// Countries are matched by name. Returns true when the country is selected
// afterwards.
func (s *Service) ToggleCountry(country domain.Country) bool {
	i := slices.IndexFunc(s.state.Countries, func(c domain.Country) bool {
		return c.Name == country.Name
	})
	selected := i < 0
	if selected {
		s.state.Countries = append(s.state.Countries, country)
	} else {
		s.state.Countries = slices.Delete(slices.Clone(s.state.Countries), i, i+1)
	}

	log.Debug("country toggled", "country", country.Name, "selected", selected)
	s.publish()
	return selected
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	if !s.HasSelection() {
		return
	}
	s.state.Topics = nil
	s.state.Countries = nil
	s.publish()
}

// IsTopicSelected checks if a topic is selected
func (s *Service) IsTopicSelected(topic domain.Topic) bool {
	return slices.Contains(s.state.Topics, topic)
}

// IsCountrySelected checks if a country is selected
func (s *Service) IsCountrySelected(name string) bool {
	return slices.ContainsFunc(s.state.Countries, func(c domain.Country) bool {
		return c.Name == name
	})
}

// GetTopics returns the selected topics in selection order
func (s *Service) GetTopics() []domain.Topic {
	return slices.Clone(s.state.Topics)
}

// GetCountries returns the selected countries in selection order
func (s *Service) GetCountries() []domain.Country {
	return slices.Clone(s.state.Countries)
}

// GetCount returns the number of selected items
func (s *Service) GetCount() int {
	return len(s.state.Topics) + len(s.state.Countries)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return s.GetCount() > 0
}

func (s *Service) publish() {
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Topics:    s.GetTopics(),
		Countries: s.GetCountries(),
	})
}
