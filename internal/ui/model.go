package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"suggestbox/internal/config"
	"suggestbox/internal/eventbus"
	"suggestbox/internal/ui/coordinator"
	"suggestbox/internal/ui/input"
	inputtypes "suggestbox/internal/ui/input/types"
	"suggestbox/internal/ui/logic"
	"suggestbox/internal/ui/services/navigation"
	"suggestbox/internal/ui/state"
	"suggestbox/internal/ui/viewmodels"
	"suggestbox/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // host-side state

	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	coordinator  *coordinator.Coordinator // suggestion engine
	inputHandler *input.Handler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	settings := coordinator.Settings{
		AutoRefresh: cfg.UISettings.AutoRefresh,
		Filter: logic.FilterOptions{
			MinQueryLength: cfg.UISettings.MinQueryLength,
			MaxMatches:     cfg.UISettings.MaxSuggestions,
		},
	}

	keys := inputtypes.DefaultKeyMap()
	appState := state.NewAppState(cfg.UISettings.AutoRefresh, cfg.UISettings.UseDropdownFilters)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		coordinator:  coordinator.NewCoordinator(bus, cfg.DomainCatalog(), settings),
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}
	m.viewModel = viewmodels.NewViewModel(appState, keys)
	m.viewModel.SetHelp(m.help)

	// the search box starts with focus
	m.coordinator.Focus()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Coordinator exposes the suggestion engine
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// Init starts the cursor blink and requests the initial result set
func (m *Model) Init() tea.Cmd {
	m.coordinator.Search.Submit(m.coordinator.Selection.GetTopics(), m.coordinator.Selection.GetCountries(), true)
	m.state.MarkSubmitted(m.coordinator.Search.Seq())
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncInput()

		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}

	snap := m.coordinator.Snapshot()
	chipsFocused := m.inputHandler.CurrentMode() == inputtypes.ModeChips
	viewState := m.viewModel.BuildViewState(snap, m.inputHandler.GetTextInput().View(), chipsFocused, m.inputHandler.ModeName())
	return m.renderer.Render(viewState)
}

func (m *Model) inputContext() input.ModelContext {
	_, hasCursor := m.coordinator.Navigation.GetCursor()
	return input.ModelContext{
		Open:      m.coordinator.Navigation.IsOpen(),
		Cursor:    hasCursor,
		Text:      m.coordinator.Search.GetQuery(),
		Chips:     m.coordinator.Selection.GetCount(),
		ChipFocus: m.state.ChipIndex,
	}
}

// syncInput pushes engine-side query rewrites back into the search box
func (m *Model) syncInput() {
	m.inputHandler.SetText(m.coordinator.Search.GetQuery())
	m.state.ClampChip(m.coordinator.Selection.GetCount())
	m.state.MarkSubmitted(m.coordinator.Search.Seq())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch dir := navigation.Direction(a.Direction); dir {
		case navigation.DirectionUp, navigation.DirectionDown:
			m.coordinator.MoveVertical(dir)
		case navigation.DirectionLeft, navigation.DirectionRight:
			m.coordinator.MoveHorizontal(dir)
		}

	case inputtypes.ActivateAction:
		m.coordinator.Activate()

	case inputtypes.SubmitAction:
		m.coordinator.Submit()

	case inputtypes.DismissAction:
		m.coordinator.Dismiss()

	case inputtypes.OpenDropdownAction:
		m.coordinator.Focus()

	case inputtypes.FocusAction:
		m.coordinator.Focus()

	case inputtypes.BlurAction:
		token, ok := m.coordinator.Blur()
		if !ok {
			return nil
		}
		return tea.Tick(m.config.UISettings.BlurGrace(), func(time.Time) tea.Msg {
			return blurCloseMsg{token: token}
		})

	case inputtypes.UpdateTextAction:
		m.coordinator.SetQuery(a.Text)

	case inputtypes.MoveChipAction:
		m.state.MoveChip(a.Delta, m.coordinator.Selection.GetCount())

	case inputtypes.RemoveChipAction:
		m.removeFocusedChip()

	case inputtypes.ClearSelectionAction:
		m.coordinator.ClearSelection()

	case inputtypes.ToggleAutoRefreshAction:
		m.state.AutoRefresh = !m.state.AutoRefresh
		m.coordinator.SetAutoRefresh(m.state.AutoRefresh)
		return m.setStatus(fmt.Sprintf("Auto refresh %s", onOff(m.state.AutoRefresh)))

	case inputtypes.ToggleInlineAction:
		m.state.UseDropdownFilters = !m.state.UseDropdownFilters
		return m.setStatus(fmt.Sprintf("Inline suggestions %s", onOff(!m.state.UseDropdownFilters)))

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.ShowHelpPagerAction:
		if m.program == nil {
			m.state.ShowHelp = !m.state.ShowHelp
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		log.Debug("quit requested", "force", a.Force)
		return tea.Quit
	}

	return nil
}

// handleMouse closes the suggestion panel when a click lands outside the
// search box and the panel as last rendered
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if !m.coordinator.Navigation.IsOpen() {
		return
	}
	if m.renderer.Layout().Panel.Contains(msg.X, msg.Y) {
		return
	}
	log.Debug("click away", "x", msg.X, "y", msg.Y)
	m.coordinator.ClickAway()
}

// removeFocusedChip toggles off the chip under the chip focus. Chips list
// topics first, then countries.
func (m *Model) removeFocusedChip() {
	topics := m.coordinator.Selection.GetTopics()
	countries := m.coordinator.Selection.GetCountries()
	index := m.state.ChipIndex

	switch {
	case index < len(topics):
		m.coordinator.ToggleTopic(topics[index])
	case index < len(topics)+len(countries):
		m.coordinator.ToggleCountry(countries[index-len(topics)])
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case blurCloseMsg:
		if m.coordinator.BlurElapsed(msg.token) {
			log.Debug("blur grace elapsed, dropdown closed")
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// fall back to the inline key summary
			log.Error("help pager failed", "err", msg.err)
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// cursor blink and friends
		return m, m.inputHandler.Update(msg)
	}
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchSubmittedEvent:
		m.state.MarkSubmitted(e.Seq)
	case eventbus.ResultsRefreshedEvent:
		if !m.state.SetResults(e.Seq, e.Query, e.Results) {
			log.Debug("dropping stale results", "seq", e.Seq, "query", e.Query, "latest", m.state.ResultsSeq)
		}
	case eventbus.ErrorEvent:
		log.Error(e.Message, "err", e.Err)
		return m.setStatus(e.Message)
	}
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
