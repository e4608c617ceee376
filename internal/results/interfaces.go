package results

import "suggestbox/internal/domain"

// ResultStore provides access to the result cards searches run against
type ResultStore interface {
	GetAll() []domain.Result
	Add(results ...domain.Result)
	Replace(results []domain.Result)
	Count() int
}
