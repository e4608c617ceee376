package viewmodels

import (
	"fmt"

	"suggestbox/internal/domain"
	"suggestbox/internal/ui/coordinator"
	"suggestbox/internal/ui/services/navigation"
	"suggestbox/internal/ui/views"
)

// BuildSections turns the engine snapshot into renderable sections, one per
// non-empty category in navigation order
func BuildSections(snap coordinator.Snapshot) []views.Section {
	sections := make([]views.Section, 0, len(snap.Ordering))
	for _, category := range snap.Ordering {
		focused := -1
		if snap.Cursor != nil && snap.Cursor.Category == category {
			focused = snap.Cursor.Index
		}

		switch category {
		case navigation.CategoryTopic:
			items := make([]views.Item, 0, len(snap.Candidates.Topics))
			for i, topic := range snap.Candidates.Topics {
				items = append(items, views.Item{
					Label:    string(topic),
					Selected: containsTopic(snap.Topics, topic),
					Focused:  i == focused,
				})
			}
			sections = append(sections, views.Section{Kind: views.SectionTopics, Title: "Filter by topic", Items: items})

		case navigation.CategoryCountry:
			items := make([]views.Item, 0, len(snap.Candidates.Countries))
			for i, country := range snap.Candidates.Countries {
				items = append(items, views.Item{
					Label:    country.Label(),
					Selected: containsCountry(snap.Countries, country),
					Focused:  i == focused,
				})
			}
			sections = append(sections, views.Section{Kind: views.SectionCountries, Title: "Filter by country", Items: items})

		case navigation.CategorySearch:
			sections = append(sections, views.Section{
				Kind:  views.SectionSearch,
				Items: []views.Item{{Label: fmt.Sprintf("🔎 Search for %q", snap.Query), Focused: focused == 0}},
			})

		case navigation.CategoryPopularSearch:
			items := make([]views.Item, 0, len(snap.PopularSearches))
			for i, phrase := range snap.PopularSearches {
				items = append(items, views.Item{Label: phrase, Focused: i == focused})
			}
			sections = append(sections, views.Section{Kind: views.SectionPopular, Title: "Popular searches", Items: items})
		}
	}
	return sections
}

// BuildChips lists the selected filters, topics first
func BuildChips(snap coordinator.Snapshot, focusIndex int) []views.Chip {
	chips := make([]views.Chip, 0, len(snap.Topics)+len(snap.Countries))
	for _, topic := range snap.Topics {
		chips = append(chips, views.Chip{Label: string(topic)})
	}
	for _, country := range snap.Countries {
		chips = append(chips, views.Chip{Label: country.Label()})
	}
	if focusIndex >= 0 && focusIndex < len(chips) {
		chips[focusIndex].Focused = true
	}
	return chips
}

func containsTopic(topics []domain.Topic, topic domain.Topic) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

func containsCountry(countries []domain.Country, country domain.Country) bool {
	for _, c := range countries {
		if c.Name == country.Name {
			return true
		}
	}
	return false
}
