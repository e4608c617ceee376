package search

import (
	"github.com/charmbracelet/log"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
)

// Service owns the search box content and submits searches
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetQuery replaces the query. Returns false when nothing changed.
func (s *Service) SetQuery(query string) bool {
	if query == s.state.Query {
		return false
	}
	s.state.Query = query
	s.bus.Publish(eventbus.QueryChangedEvent{Query: query})
	return true
}

// ClearQuery empties the search box
func (s *Service) ClearQuery() {
	s.SetQuery("")
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// LastSubmitted returns the query of the most recent submission
func (s *Service) LastSubmitted() string {
	return s.state.LastSubmitted
}

// Submissions returns how many searches were submitted
func (s *Service) Submissions() int {
	return s.state.Submissions
}

// Seq returns the sequence number of the latest submission, zero before
// the first one
func (s *Service) Seq() uint64 {
	return s.state.Seq
}

// Submit asks the results collaborator to refresh for the current query and
// the given selection. auto marks refreshes that were not requested by the
// user.
func (s *Service) Submit(topics []domain.Topic, countries []domain.Country, auto bool) {
	s.state.Seq++
	if !auto {
		s.state.LastSubmitted = s.state.Query
		s.state.Submissions++
		log.Debug("search submitted", "query", s.state.Query, "topics", len(topics), "countries", len(countries))
	}
	s.bus.Publish(eventbus.SearchSubmittedEvent{
		Seq:       s.state.Seq,
		Query:     s.state.Query,
		Topics:    topics,
		Countries: countries,
		Auto:      auto,
	})
}
