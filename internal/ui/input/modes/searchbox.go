package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/ui/input/types"
)

// SearchBoxMode drives the search box and its suggestion panel
type SearchBoxMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewSearchBoxMode(keys types.KeyMap, ti *textinput.Model) *SearchBoxMode {
	return &SearchBoxMode{
		keys:      keys,
		textInput: ti,
	}
}

func (m *SearchBoxMode) Name() string {
	return "search"
}

func (m *SearchBoxMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return []types.Action{types.FocusAction{}}
}

func (m *SearchBoxMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return []types.Action{types.BlurAction{}}
}

func (m *SearchBoxMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Dismiss):
		if ctx.DropdownOpen() {
			return []types.Action{types.DismissAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		direction := "down"
		if key.Matches(msg, m.keys.Up) {
			direction = "up"
		}
		if !ctx.DropdownOpen() {
			return []types.Action{types.OpenDropdownAction{}, types.NavigateAction{Direction: direction}}, true
		}
		return []types.Action{types.NavigateAction{Direction: direction}}, true

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		// without a cursor the arrows move the caret
		if !ctx.DropdownOpen() || !ctx.HasCursor() {
			return nil, false
		}
		direction := "right"
		if key.Matches(msg, m.keys.Left) {
			direction = "left"
		}
		return []types.Action{types.NavigateAction{Direction: direction}}, true

	case key.Matches(msg, m.keys.Accept):
		if ctx.DropdownOpen() && ctx.HasCursor() {
			return []types.Action{types.ActivateAction{}}, true
		}
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, m.keys.SwitchFocus):
		if ctx.ChipCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeChips}}, true

	case key.Matches(msg, m.keys.AutoRefresh):
		return []types.Action{types.ToggleAutoRefreshAction{}}, true

	case key.Matches(msg, m.keys.Inline):
		return []types.Action{types.ToggleInlineAction{}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.ShowHelpPagerAction{}}, true
	}

	// Let the main handler update the text input
	return nil, false
}
