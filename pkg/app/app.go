package app

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jesseduffield/gocui"

	"github.com/flowkit-dev/flowkit/pkg/assist"
	"github.com/flowkit-dev/flowkit/pkg/config"
	"github.com/flowkit-dev/flowkit/pkg/git"
	"github.com/flowkit-dev/flowkit/pkg/layout"
	"github.com/flowkit-dev/flowkit/pkg/workspace"
)

const (
	spinnerTickInterval = 50 * time.Millisecond
)

var spinnerFrames = []rune{'|', '/', '-', '\\'}

type App struct {
	g           *gocui.Gui
	cfg         *config.Config
	version     string
	coordinator *layout.Coordinator
	project     *workspace.Project
	gitInfo     *git.Info
	adapter     assist.Adapter

	panels       map[string]Panel
	slots        map[layout.Content]*SlotPanel
	liveSlots    map[string]bool // Slot views drawn on the last layout pass
	focusOrder   []string
	currentFocus int

	rail      *RailPanel
	navigator *NavigatorPanel
	editor    *EditorPanel
	console   *ConsolePanel

	chat          *ChatSession
	notifications []string
	history       []string // Recently opened files, most recent last
	bookmarks     []string
	searchQuery   string

	// Modal management
	activeModal Modal
	savedFocus  int

	// Command execution tracking
	commandRunning     atomic.Bool   // Thread-safe flag for command execution
	runningCommandName atomic.Value  // Name of currently running command (string)
	spinnerFrame       atomic.Uint32 // Current spinner frame index (0-3)
	stopSpinnerCh      chan struct{} // Channel to stop spinner goroutine
}

func NewApp(cfg *config.Config, project *workspace.Project, version string) (*App, error) {
	g, err := gocui.NewGui(gocui.NewGuiOpts{OutputMode: gocui.OutputTrue})
	if err != nil {
		return nil, err
	}

	reg := layout.DefaultRegistry()
	rules := layout.DefaultRules(reg)
	for i := range rules {
		for _, name := range cfg.Triggers.Disabled {
			if rules[i].Name == name {
				rules[i].Enabled = false
			}
		}
	}
	coordinator := layout.NewCoordinator(cfg.LayoutGeometry(), reg, rules)

	app := &App{
		g:             g,
		cfg:           cfg,
		version:       version,
		coordinator:   coordinator,
		project:       project,
		gitInfo:       git.GetInfo(project.Root),
		adapter:       assist.NewOpenAIAdapter(assist.AdapterConfig{Model: cfg.Assist.Model, APIKey: cfg.APIKey(), BaseURL: cfg.Assist.BaseURL}),
		panels:        make(map[string]Panel),
		slots:         make(map[layout.Content]*SlotPanel),
		liveSlots:     make(map[string]bool),
		focusOrder:    []string{ViewRail, ViewNavigator, ViewEditor},
		stopSpinnerCh: make(chan struct{}),
	}
	app.chat = NewChatSession(app)

	app.rail = NewRailPanel(g, app)
	app.navigator = NewNavigatorPanel(g, app)
	app.editor = NewEditorPanel(g, app)
	app.console = NewConsolePanel(g, app)
	app.RegisterPanel(app.rail)
	app.RegisterPanel(app.navigator)
	app.RegisterPanel(app.editor)
	app.RegisterPanel(app.console)
	app.RegisterPanel(NewStatusBar(g, app))

	// Reducer events land in the output tab so layout changes stay traceable
	coordinator.Subscribe(func(event layout.Event) {
		app.g.Update(func(*gocui.Gui) error {
			app.console.LogEvent(event)
			return nil
		})
	})

	if p := layout.Preset(cfg.Layout.StartupPreset); p != "" {
		coordinator.Dispatch(layout.ApplyPreset{Preset: p})
	}

	g.SetManagerFunc(gocui.ManagerFunc(app.layoutManager))
	g.Mouse = true
	g.ShowListFooter = true

	app.startSpinnerUpdater()

	return app, nil
}

func (a *App) Run() error {
	defer a.g.Close()
	defer close(a.stopSpinnerCh)

	if len(a.focusOrder) > 0 {
		if panel, ok := a.panels[a.focusOrder[0]]; ok {
			panel.OnFocus()
		}
	}

	if err := a.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (a *App) RegisterPanel(panel Panel) {
	a.panels[panel.ID()] = panel
}

func (a *App) GetGui() *gocui.Gui {
	return a.g
}

// Coordinator exposes the layout coordinator for panels and keybindings.
func (a *App) Coordinator() *layout.Coordinator {
	return a.coordinator
}

// Dispatch routes a layout action through the coordinator.
func (a *App) Dispatch(action layout.Action) layout.Event {
	return a.coordinator.Dispatch(action)
}

// slotPanel returns the panel rendering a sidebar content kind, creating it
// on first use.
func (a *App) slotPanel(c layout.Content) *SlotPanel {
	if p, ok := a.slots[c]; ok {
		return p
	}
	p := NewSlotPanel(a.g, a, c)
	a.slots[c] = p
	a.panels[p.ID()] = p
	a.registerSlotMouseBindings(p)
	return p
}

// triggerContext assembles the external facts the trigger rules consult.
func (a *App) triggerContext() layout.TriggerContext {
	return layout.TriggerContext{
		FileName:     a.editor.FileName(),
		ErrorCount:   a.console.ErrorCount(),
		WarningCount: a.console.WarningCount(),
		Preferences:  a.cfg.Triggers.Preferences,
	}
}

// HandleDomainEvent routes a workspace event through the trigger engine and
// updates badges for panels that stayed off screen.
func (a *App) HandleDomainEvent(ev layout.DomainEvent, badgeTarget layout.Content, count int) {
	a.coordinator.HandleDomainEvent(ev, a.triggerContext())
	if badgeTarget != "" {
		for _, action := range layout.BadgeActions(a.coordinator.State(), badgeTarget, count) {
			a.coordinator.Dispatch(action)
		}
	}
}

// ApplyConfig applies a freshly loaded config. Rule toggles, scan settings,
// build overrides and the assistant take effect immediately; geometry is
// baked into the reducer and needs a restart.
func (a *App) ApplyConfig(next *config.Config) {
	a.g.Update(func(*gocui.Gui) error {
		a.cfg = next

		engine := a.coordinator.Engine()
		for _, rule := range engine.Rules() {
			engine.SetEnabled(rule.Name, true)
		}
		for _, name := range next.Triggers.Disabled {
			engine.SetEnabled(name, false)
		}

		a.adapter = assist.NewOpenAIAdapter(assist.AdapterConfig{
			Model:   next.Assist.Model,
			APIKey:  next.APIKey(),
			BaseURL: next.Assist.BaseURL,
		})

		a.navigator.Refresh()
		a.console.LogAction("Config", "Configuration reloaded")
		return nil
	})
}

// Notify records a message for the notifications slot and raises its badge
// while the slot is off screen.
func (a *App) Notify(message string) {
	a.notifications = append(a.notifications, fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), message))
	for _, action := range layout.BadgeActions(a.coordinator.State(), layout.ContentNotifications, 1) {
		a.coordinator.Dispatch(action)
	}
}

// recordFileOpened tracks the navigation history shown in the history slot.
func (a *App) recordFileOpened(relPath string) {
	if len(a.history) > 0 && a.history[len(a.history)-1] == relPath {
		return
	}
	a.history = append(a.history, relPath)
}

// searchResults matches the current query against the navigator file list.
func (a *App) searchResults() (string, []string) {
	if a.searchQuery == "" {
		return "", nil
	}
	query := strings.ToLower(a.searchQuery)
	var out []string
	for _, file := range a.navigator.files {
		if strings.Contains(strings.ToLower(file), query) {
			out = append(out, file)
		}
	}
	return a.searchQuery, out
}

// ToggleBookmark adds or removes the open file from the bookmark list.
func (a *App) ToggleBookmark() {
	file := a.editor.FileName()
	if file == "" {
		return
	}
	for i, b := range a.bookmarks {
		if b == file {
			a.bookmarks = append(a.bookmarks[:i], a.bookmarks[i+1:]...)
			return
		}
	}
	a.bookmarks = append(a.bookmarks, file)
}

// OpenModal opens a modal and saves current focus state
func (a *App) OpenModal(modal Modal) {
	a.savedFocus = a.currentFocus

	for _, id := range a.focusOrder {
		if panel, ok := a.panels[id]; ok {
			panel.OnBlur()
		}
	}

	a.activeModal = modal
}

// CloseModal closes the active modal and restores focus
func (a *App) CloseModal() {
	if a.activeModal != nil {
		a.activeModal.OnClose()
		a.activeModal = nil
	}

	if a.savedFocus >= 0 && a.savedFocus < len(a.focusOrder) {
		if panel, ok := a.panels[a.focusOrder[a.savedFocus]]; ok {
			panel.OnFocus()
		}
	}
}

// HasActiveModal returns true if a modal is currently active
func (a *App) HasActiveModal() bool {
	return a.activeModal != nil
}

// GetCurrentPanel returns the currently focused panel
func (a *App) GetCurrentPanel() Panel {
	if a.currentFocus >= 0 && a.currentFocus < len(a.focusOrder) {
		return a.panels[a.focusOrder[a.currentFocus]]
	}
	return nil
}

// tryStartCommand attempts to start a command execution
// Returns true if command can start, false if another command is already running
func (a *App) tryStartCommand(commandName string) bool {
	if a.commandRunning.CompareAndSwap(false, true) {
		a.runningCommandName.Store(commandName)
		return true
	}
	return false
}

// finishCommand marks command execution as complete
func (a *App) finishCommand() {
	a.runningCommandName.Store("")
	a.commandRunning.Store(false)
	a.spinnerFrame.Store(0)
}

// confirmQuit asks before quitting while a command is still in flight.
func (a *App) confirmQuit() {
	message := "A command is still running. Quit anyway?"
	if val := a.runningCommandName.Load(); val != nil && val.(string) != "" {
		message = fmt.Sprintf("'%s' is still running. Quit anyway?", val.(string))
	}

	a.OpenModal(NewConfirmModal(a.g, "Quit", message, func() {
		a.g.Update(func(*gocui.Gui) error {
			return gocui.ErrQuit
		})
	}, a.CloseModal))
}

// logCommandBlocked logs a message when command execution is blocked
func (a *App) logCommandBlocked(commandName string) {
	a.g.Update(func(g *gocui.Gui) error {
		runningTask := ""
		if val := a.runningCommandName.Load(); val != nil {
			runningTask = val.(string)
		}

		message := fmt.Sprintf("Cannot execute '%s'", commandName)
		if runningTask != "" {
			message += fmt.Sprintf(" ('%s' is currently running)", runningTask)
		}

		a.console.LogActionRed("Operation Blocked", message)
		return nil
	})
}

// startSpinnerUpdater starts a background goroutine that updates the spinner frame
func (a *App) startSpinnerUpdater() {
	go func() {
		ticker := time.NewTicker(spinnerTickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if a.commandRunning.Load() {
					currentFrame := a.spinnerFrame.Load()
					nextFrame := (currentFrame + 1) % uint32(len(spinnerFrames))
					a.spinnerFrame.Store(nextFrame)

					a.g.Update(func(g *gocui.Gui) error {
						// StatusBar is redrawn by the layout manager
						return nil
					})
				}
			case <-a.stopSpinnerCh:
				return
			}
		}
	}()
}

// handlePanelClick handles mouse click on a panel to switch focus
func (a *App) handlePanelClick(viewID string) error {
	if a.HasActiveModal() {
		return nil
	}

	targetIndex := -1
	for i, id := range a.focusOrder {
		if id == viewID {
			targetIndex = i
			break
		}
	}

	if targetIndex == -1 || targetIndex == a.currentFocus {
		return nil
	}

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnBlur()
	}

	a.currentFocus = targetIndex

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnFocus()
	}

	return nil
}

// registerMouseClickForFocus registers a mouse click handler to switch focus
func (a *App) registerMouseClickForFocus(viewID string) {
	a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
		ViewName: viewID,
		Key:      gocui.MouseLeft,
		Modifier: gocui.ModNone,
		Handler: func(opts gocui.ViewMouseBindingOpts) error {
			return a.handlePanelClick(viewID)
		},
	})
}

// registerWheelScroll registers wheel handlers that scroll the given panel.
func (a *App) registerWheelScroll(viewID string, up, down func()) {
	a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
		ViewName: viewID,
		Key:      gocui.MouseWheelUp,
		Modifier: gocui.ModNone,
		Handler: func(opts gocui.ViewMouseBindingOpts) error {
			if a.HasActiveModal() {
				return nil
			}
			up()
			return nil
		},
	})
	a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
		ViewName: viewID,
		Key:      gocui.MouseWheelDown,
		Modifier: gocui.ModNone,
		Handler: func(opts gocui.ViewMouseBindingOpts) error {
			if a.HasActiveModal() {
				return nil
			}
			down()
			return nil
		},
	})
}

func (a *App) registerSlotMouseBindings(p *SlotPanel) {
	a.registerMouseClickForFocus(p.ID())
	a.registerWheelScroll(p.ID(), p.ScrollUpByWheel, p.ScrollDownByWheel)
}

// RegisterMouseBindings registers mouse click handlers for all panels
func (a *App) RegisterMouseBindings() {
	a.registerMouseClickForFocus(ViewNavigator)
	a.registerMouseClickForFocus(ViewEditor)
	a.registerMouseClickForFocus(ViewBottom)

	// Rail rows add or remove sidebar content directly
	a.g.SetViewClickBinding(&gocui.ViewMouseBinding{
		ViewName: ViewRail,
		Key:      gocui.MouseLeft,
		Modifier: gocui.ModNone,
		Handler: func(opts gocui.ViewMouseBindingOpts) error {
			if a.HasActiveModal() {
				return nil
			}
			if err := a.handlePanelClick(ViewRail); err != nil {
				return err
			}
			return a.rail.handleRowClick(opts.Y)
		},
	})

	// Bottom panel tab clicks switch the active tab through the reducer
	a.g.SetTabClickBinding(ViewBottom, func(tabIndex int) error {
		return a.console.handleTabClick(tabIndex)
	})

	a.registerWheelScroll(ViewNavigator, a.navigator.ScrollUpByWheel, a.navigator.ScrollDownByWheel)
	a.registerWheelScroll(ViewEditor, a.editor.ScrollUpByWheel, a.editor.ScrollDownByWheel)
	a.registerWheelScroll(ViewBottom, a.console.ScrollUpByWheel, a.console.ScrollDownByWheel)
	a.registerWheelScroll(ViewRail, a.rail.ScrollUpByWheel, a.rail.ScrollDownByWheel)
}

// RefreshAll refreshes the workspace panels asynchronously
func (a *App) RefreshAll(onComplete ...func()) bool {
	if !a.tryStartCommand("Refresh All") {
		a.logCommandBlocked("Refresh All")
		return false
	}

	go func() {
		defer a.finishCommand()

		a.navigator.Refresh()
		a.gitInfo = git.GetInfo(a.project.Root)
		a.console.RefreshGitTab()

		a.g.Update(func(g *gocui.Gui) error {
			a.console.LogAction("Refresh", "Workspace panels have been refreshed")

			for _, callback := range onComplete {
				callback()
			}
			return nil
		})
	}()

	return true
}
