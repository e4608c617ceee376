package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/ui/input/types"
)

// ChipsMode moves between the selected filter chips
type ChipsMode struct {
	keys types.KeyMap
}

func NewChipsMode(keys types.KeyMap) *ChipsMode {
	return &ChipsMode{keys: keys}
}

func (m *ChipsMode) Name() string {
	return "filters"
}

func (m *ChipsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ChipsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ChipsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Leave):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.PrevChip):
		return []types.Action{types.MoveChipAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.NextChip):
		return []types.Action{types.MoveChipAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.RemoveChip):
		actions := []types.Action{types.RemoveChipAction{}}
		if ctx.ChipCount() <= 1 {
			// last chip gone, nothing left to focus here
			actions = append(actions, types.ChangeModeAction{Mode: types.ModeSearchBox})
		}
		return actions, true

	case key.Matches(msg, m.keys.ClearAll):
		return []types.Action{
			types.ClearSelectionAction{},
			types.ChangeModeAction{Mode: types.ModeSearchBox},
		}, true

	case key.Matches(msg, m.keys.SwitchFocus), key.Matches(msg, m.keys.Dismiss):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearchBox}}, true

	case key.Matches(msg, m.keys.AutoRefresh):
		return []types.Action{types.ToggleAutoRefreshAction{}}, true

	case key.Matches(msg, m.keys.Inline):
		return []types.Action{types.ToggleInlineAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.ShowHelpPagerAction{}}, true
	}
	return nil, false
}
