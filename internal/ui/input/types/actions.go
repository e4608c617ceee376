package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// ActivateAction activates the suggestion under the cursor
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// SubmitAction is Enter in the search box
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

type OpenDropdownAction struct{}

func (a OpenDropdownAction) Type() string { return "open_dropdown" }

// Focus actions emitted when the search box gains or loses focus
type FocusAction struct{}

func (a FocusAction) Type() string { return "focus" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Chip actions
type MoveChipAction struct {
	Delta int
}

func (a MoveChipAction) Type() string { return "move_chip" }

type RemoveChipAction struct{}

func (a RemoveChipAction) Type() string { return "remove_chip" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Settings actions
type ToggleAutoRefreshAction struct{}

func (a ToggleAutoRefreshAction) Type() string { return "toggle_auto_refresh" }

type ToggleInlineAction struct{}

func (a ToggleInlineAction) Type() string { return "toggle_inline" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }
