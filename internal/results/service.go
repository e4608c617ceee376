package results

import (
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
)

// DefaultMaxResults caps a refreshed result set
const DefaultMaxResults = 6

// Service answers search submissions with a refreshed result set
type Service struct {
	store      ResultStore
	bus        eventbus.EventBus
	maxResults int

	mu          sync.Mutex
	unsubscribe func()
}

// NewService creates a results service over store
func NewService(store ResultStore, bus eventbus.EventBus, maxResults int) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Service{
		store:      store,
		bus:        bus,
		maxResults: maxResults,
	}
}

// Start subscribes to search submissions
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.bus.Subscribe(eventbus.EventSearchSubmitted, s.handleSearchSubmitted)
}

// Stop unsubscribes from search submissions
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Service) handleSearchSubmitted(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.SearchSubmittedEvent)
	if !ok {
		return
	}

	results := s.Refresh(event.Query, event.Topics, event.Countries)
	log.Debug("results refreshed", "query", event.Query, "count", len(results), "auto", event.Auto)
	s.bus.Publish(eventbus.ResultsRefreshedEvent{
		Seq:     event.Seq,
		Query:   event.Query,
		Results: results,
	})
}

// Refresh returns the cards matching the query and selection, in store
// order. A card must share a topic with the selected topics and a country
// with the selected countries when those are non-empty, and its title or
// subtitle must contain the query when the query is non-empty.
func (s *Service) Refresh(query string, topics []domain.Topic, countries []domain.Country) []domain.Result {
	caser := cases.Fold()
	needle := caser.String(strings.TrimSpace(query))

	countryNames := make([]string, 0, len(countries))
	for _, c := range countries {
		countryNames = append(countryNames, c.Name)
	}

	matched := make([]domain.Result, 0, s.maxResults)
	for _, result := range s.store.GetAll() {
		if len(matched) >= s.maxResults {
			break
		}
		if len(topics) > 0 && !slices.ContainsFunc(result.Topics, func(t domain.Topic) bool {
			return slices.Contains(topics, t)
		}) {
			continue
		}
		if len(countryNames) > 0 && !slices.ContainsFunc(result.Countries, func(name string) bool {
			return slices.Contains(countryNames, name)
		}) {
			continue
		}
		if needle != "" &&
			!strings.Contains(caser.String(result.Title), needle) &&
			!strings.Contains(caser.String(result.Subtitle), needle) {
			continue
		}
		matched = append(matched, result)
	}
	return matched
}
