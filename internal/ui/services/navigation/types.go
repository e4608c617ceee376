package navigation

import (
	"suggestbox/internal/domain"
)

// Category tags one navigable group of the suggestion panel
type Category int

const (
	CategoryTopic Category = iota
	CategoryCountry
	CategorySearch
	CategoryPopularSearch
)

func (c Category) String() string {
	switch c {
	case CategoryTopic:
		return "topic"
	case CategoryCountry:
		return "country"
	case CategorySearch:
		return "search"
	case CategoryPopularSearch:
		return "popularSearch"
	default:
		return "unknown"
	}
}

// Cursor is a position inside the displayed list of one category
type Cursor struct {
	Category Category
	Index    int
}

// Panel is everything the navigator needs to know about what is displayed
type Panel struct {
	Topics          []domain.Topic
	Countries       []domain.Country
	Query           string
	PopularSearches []string
	HasSelection    bool
}

// State holds all navigation-related state
type State struct {
	Cursor *Cursor
	Open   bool
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// EffectKind says what an activation asks the rest of the engine to do
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectToggleTopic
	EffectToggleCountry
	EffectSubmit
	EffectPopularSearch
)

// Effect is the side effect produced by Activate
type Effect struct {
	Kind    EffectKind
	Topic   domain.Topic
	Country domain.Country
	Query   string
}

// Close reasons carried by DropdownClosedEvent
const (
	ReasonBlur      = "blur"
	ReasonDismiss   = "dismiss"
	ReasonClickAway = "click-away"
	ReasonActivate  = "activate"
	ReasonCleared   = "cleared"
	ReasonSubmit    = "submit"
)
