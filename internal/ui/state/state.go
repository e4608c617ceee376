package state

import (
	"suggestbox/internal/domain"
)

// AppState contains the host-side application state. The suggestion engine
// keeps its own state in the coordinator.
type AppState struct {
	// Results
	Results      []domain.Result
	ResultsQuery string // query the current results were computed for
	Refreshing   bool
	SubmittedSeq uint64 // latest submission sent to the results collaborator
	ResultsSeq   uint64 // submission the current results answer

	// Settings
	AutoRefresh        bool
	UseDropdownFilters bool

	// Chip focus
	ChipIndex int

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState(autoRefresh, useDropdownFilters bool) *AppState {
	return &AppState{
		AutoRefresh:        autoRefresh,
		UseDropdownFilters: useDropdownFilters,
	}
}

// MarkSubmitted records a submission. Sequence numbers at or below the
// latest one already seen are ignored.
func (s *AppState) MarkSubmitted(seq uint64) {
	if seq > s.SubmittedSeq {
		s.SubmittedSeq = seq
	}
	s.Refreshing = s.SubmittedSeq > s.ResultsSeq
}

// SetResults stores a refreshed result set unless a newer submission has
// already been answered. Returns false for stale results.
func (s *AppState) SetResults(seq uint64, query string, results []domain.Result) bool {
	if seq < s.ResultsSeq {
		return false
	}
	s.Results = results
	s.ResultsQuery = query
	s.ResultsSeq = seq
	s.MarkSubmitted(seq)
	return true
}

// MoveChip moves the chip focus by delta, clamped to [0, count-1]
func (s *AppState) MoveChip(delta, count int) {
	s.ChipIndex = clampIndex(s.ChipIndex+delta, count)
}

// ClampChip keeps the chip focus valid after chips were removed
func (s *AppState) ClampChip(count int) {
	s.ChipIndex = clampIndex(s.ChipIndex, count)
}

func clampIndex(index, count int) int {
	if index >= count {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
