package search

// State holds search state
type State struct {
	Query         string
	LastSubmitted string
	Submissions   int
	Seq           uint64 // last submission sequence, auto refreshes included
}
