package selection

import (
	"suggestbox/internal/domain"
)

// State holds the pinned selection. Both lists keep insertion order and
// never hold the same item twice.
type State struct {
	Topics    []domain.Topic
	Countries []domain.Country
}
