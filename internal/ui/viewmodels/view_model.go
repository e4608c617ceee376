package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"suggestbox/internal/ui/coordinator"
	"suggestbox/internal/ui/state"
	"suggestbox/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state *state.AppState
	help  help.Model
	keys  help.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state: appState,
		help:  help.New(),
		keys:  keys,
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(snap coordinator.Snapshot, textInput string, chipsFocused bool, modeName string) views.ViewState {
	vm.help.Width = vm.state.Width

	return views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		TextInput:     textInput,
		InputFocused:  snap.Focused && !chipsFocused,
		DropdownOpen:  snap.Open,
		Inline:        !vm.state.UseDropdownFilters,
		Sections:      BuildSections(snap),
		Chips:         BuildChips(snap, vm.state.ChipIndex),
		ChipsFocused:  chipsFocused,
		Results:       vm.state.Results,
		ResultsQuery:  vm.state.ResultsQuery,
		Refreshing:    vm.state.Refreshing,
		AutoRefresh:   vm.state.AutoRefresh,
		StatusMessage: vm.state.StatusMessage,
		ModeName:      modeName,
		HelpModel:     vm.help,
		Keys:          vm.keys,
		ShowHelp:      vm.state.ShowHelp,
	}
}
