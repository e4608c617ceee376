package navigation

// categorySpec describes one category: how many entries it currently shows
// and what activating the entry at an index does.
type categorySpec struct {
	length   func(p Panel) int
	activate func(p Panel, index int) Effect
}

// priority is the fixed order categories appear in
var priority = []Category{CategoryTopic, CategoryCountry, CategorySearch, CategoryPopularSearch}

var categories = map[Category]categorySpec{
	CategoryTopic: {
		length: func(p Panel) int { return len(p.Topics) },
		activate: func(p Panel, index int) Effect {
			return Effect{Kind: EffectToggleTopic, Topic: p.Topics[index]}
		},
	},
	CategoryCountry: {
		length: func(p Panel) int { return len(p.Countries) },
		activate: func(p Panel, index int) Effect {
			return Effect{Kind: EffectToggleCountry, Country: p.Countries[index]}
		},
	},
	CategorySearch: {
		length: func(p Panel) int {
			if p.Query == "" {
				return 0
			}
			return 1
		},
		activate: func(p Panel, _ int) Effect {
			return Effect{Kind: EffectSubmit, Query: p.Query}
		},
	},
	CategoryPopularSearch: {
		length: func(p Panel) int {
			if p.Query != "" || p.HasSelection {
				return 0
			}
			return len(p.PopularSearches)
		},
		activate: func(p Panel, index int) Effect {
			return Effect{Kind: EffectPopularSearch, Query: p.PopularSearches[index]}
		},
	},
}

// Length returns how many entries category c displays
func (p Panel) Length(c Category) int {
	spec, ok := categories[c]
	if !ok {
		return 0
	}
	return spec.length(p)
}

// Ordering returns the non-empty categories in priority order
func (p Panel) Ordering() []Category {
	ordering := make([]Category, 0, len(priority))
	for _, c := range priority {
		if p.Length(c) > 0 {
			ordering = append(ordering, c)
		}
	}
	return ordering
}

// Valid reports whether the cursor points at a displayed entry
func (p Panel) Valid(c Cursor) bool {
	return c.Index >= 0 && c.Index < p.Length(c.Category)
}

func indexOf(ordering []Category, c Category) int {
	for i, cat := range ordering {
		if cat == c {
			return i
		}
	}
	return -1
}

func clamp(index, length int) int {
	if index >= length {
		index = length - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
