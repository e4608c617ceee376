package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeSearchBox sends keys to the search box and its suggestion panel
	ModeSearchBox Mode = iota
	// ModeChips moves between the selected filter chips
	ModeChips
)

func (m Mode) String() string {
	switch m {
	case ModeSearchBox:
		return "search"
	case ModeChips:
		return "filters"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	DropdownOpen() bool
	HasCursor() bool
	Query() string
	ChipCount() int
	ChipIndex() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
