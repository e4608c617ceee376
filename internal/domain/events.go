package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventQueryChanged     EventType = "QueryChanged"
	EventSearchSubmitted  EventType = "SearchSubmitted"
	EventResultsRefreshed EventType = "ResultsRefreshed"
	EventDropdownOpened   EventType = "DropdownOpened"
	EventDropdownClosed   EventType = "DropdownClosed"
	EventCursorMoved      EventType = "CursorMoved"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent carries the pinned selection after every toggle.
// Hosts use it to render the selected-filter chips.
type SelectionChangedEvent struct {
	Topics    []Topic
	Countries []Country
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// QueryChangedEvent is emitted whenever the search box content changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SearchSubmittedEvent asks the results collaborator to recompute results.
// Auto is true when the refresh was triggered by auto refresh rather than
// an explicit submission. Seq increases with every submission.
type SearchSubmittedEvent struct {
	Seq       uint64
	Query     string
	Topics    []Topic
	Countries []Country
	Auto      bool
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// ResultsRefreshedEvent carries a freshly computed result set. Seq echoes
// the submission it answers; refreshes may be delivered out of order.
type ResultsRefreshedEvent struct {
	Seq     uint64
	Query   string
	Results []Result
}

func (e ResultsRefreshedEvent) Type() EventType { return EventResultsRefreshed }

// DropdownOpenedEvent is emitted when the suggestion panel becomes visible
type DropdownOpenedEvent struct{}

func (e DropdownOpenedEvent) Type() EventType { return EventDropdownOpened }

// DropdownClosedEvent is emitted when the suggestion panel is hidden
type DropdownClosedEvent struct {
	Reason string
}

func (e DropdownClosedEvent) Type() EventType { return EventDropdownClosed }

// CursorMovedEvent is emitted when the focus cursor changes position.
// Category is empty when the cursor was cleared.
type CursorMovedEvent struct {
	Category string
	Index    int
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
