package logic

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"suggestbox/internal/domain"
)

const (
	// DefaultMinQueryLength is the shortest query that produces matches
	DefaultMinQueryLength = 2
	// DefaultMaxMatches caps the non-selected matches per category
	DefaultMaxMatches = 5
)

// FilterOptions tunes candidate derivation
type FilterOptions struct {
	MinQueryLength int
	MaxMatches     int
}

// DefaultFilterOptions returns the stock limits
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		MinQueryLength: DefaultMinQueryLength,
		MaxMatches:     DefaultMaxMatches,
	}
}

// Candidates are the suggestion lists shown in the dropdown
type Candidates struct {
	Topics    []domain.Topic
	Countries []domain.Country
}

// Empty reports whether neither list has an entry
func (c Candidates) Empty() bool {
	return len(c.Topics) == 0 && len(c.Countries) == 0
}

// SuggestionFilter derives candidates against a fixed catalog
type SuggestionFilter struct {
	catalog domain.Catalog
	opts    FilterOptions
}

// NewSuggestionFilter creates a new suggestion filter
func NewSuggestionFilter(catalog domain.Catalog, opts FilterOptions) *SuggestionFilter {
	return &SuggestionFilter{
		catalog: catalog,
		opts:    opts,
	}
}

// Catalog returns the catalog the filter matches against
func (sf *SuggestionFilter) Catalog() domain.Catalog {
	return sf.catalog
}

// Derive computes the displayed topics and countries for a query and selection
func (sf *SuggestionFilter) Derive(query string, selectedTopics []domain.Topic, selectedCountries []domain.Country) Candidates {
	return DeriveCandidates(query, sf.catalog, selectedTopics, selectedCountries, sf.opts)
}

// DeriveCandidates returns the selected items first, in selection order,
// followed by at most opts.MaxMatches non-selected catalog items whose label
// contains the query (case-insensitive), in catalog order. Queries shorter
// than opts.MinQueryLength runes match nothing, but selected items are always
// listed.
func DeriveCandidates(query string, catalog domain.Catalog, selectedTopics []domain.Topic, selectedCountries []domain.Country, opts FilterOptions) Candidates {
	m := newMatcher(query, opts.MinQueryLength)

	topics := make([]domain.Topic, 0, len(selectedTopics)+opts.MaxMatches)
	pinnedTopics := make(map[domain.Topic]bool, len(selectedTopics))
	for _, topic := range selectedTopics {
		if pinnedTopics[topic] {
			continue
		}
		pinnedTopics[topic] = true
		topics = append(topics, topic)
	}
	matched := 0
	for _, topic := range catalog.Topics {
		if matched >= opts.MaxMatches {
			break
		}
		if pinnedTopics[topic] || !m.matches(string(topic)) {
			continue
		}
		topics = append(topics, topic)
		matched++
	}

	countries := make([]domain.Country, 0, len(selectedCountries)+opts.MaxMatches)
	pinnedCountries := make(map[string]bool, len(selectedCountries))
	for _, country := range selectedCountries {
		if pinnedCountries[country.Name] {
			continue
		}
		pinnedCountries[country.Name] = true
		countries = append(countries, country)
	}
	matched = 0
	for _, country := range catalog.Countries {
		if matched >= opts.MaxMatches {
			break
		}
		if pinnedCountries[country.Name] || !m.matches(country.Name) {
			continue
		}
		countries = append(countries, country)
		matched++
	}

	return Candidates{Topics: topics, Countries: countries}
}

// matcher is a case-folded substring test; a zero needle matches nothing
type matcher struct {
	caser  cases.Caser
	needle string
}

func newMatcher(query string, minLength int) matcher {
	m := matcher{caser: cases.Fold()}
	if query == "" || utf8.RuneCountInString(query) < minLength {
		return m
	}
	m.needle = m.caser.String(query)
	return m
}

func (m matcher) matches(label string) bool {
	if m.needle == "" {
		return false
	}
	return strings.Contains(m.caser.String(label), m.needle)
}
