package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"

	"github.com/flowkit-dev/flowkit/pkg/layout"
)

const (
	sidebarWidthStep      = 4
	bottomPanelHeightStep = 2
)

// bindGlobal registers a handler that only runs while no modal is open.
func (a *App) bindGlobal(key any, handler func() error) error {
	return a.g.SetKeybinding("", key, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasActiveModal() {
			return nil
		}
		return handler()
	})
}

// bindModalAware registers a handler that forwards the key to the active
// modal first.
func (a *App) bindModalAware(key any, handler func() error) error {
	return a.g.SetKeybinding("", key, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasActiveModal() {
			return a.activeModal.HandleKey(key, gocui.ModNone)
		}
		return handler()
	})
}

func (a *App) RegisterKeybindings() error {
	// Quit or close modal (lowercase q)
	if err := a.g.SetKeybinding("", 'q', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasActiveModal() {
			// InputModal uses 'q' for text input, not for closing
			if _, ok := a.activeModal.(*InputModal); !ok {
				a.CloseModal()
				return nil
			}
			return nil
		}
		if a.commandRunning.Load() {
			a.confirmQuit()
			return nil
		}
		return gocui.ErrQuit
	}); err != nil {
		return err
	}

	// Ctrl+C to quit
	if err := a.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		return gocui.ErrQuit
	}); err != nil {
		return err
	}

	// ESC closes the modal
	if err := a.g.SetKeybinding("", gocui.KeyEsc, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasActiveModal() {
			a.CloseModal()
			return nil
		}
		return nil
	}); err != nil {
		return err
	}

	// Tab / Shift+Tab cycle panel focus
	if err := a.bindModalAware(gocui.KeyTab, func() error {
		a.FocusNext()
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindModalAware(gocui.KeyBacktab, func() error {
		a.FocusPrevious()
		return nil
	}); err != nil {
		return err
	}

	// Arrow keys: left/right move focus, up/down move within the panel
	if err := a.bindModalAware(gocui.KeyArrowRight, func() error {
		a.FocusNext()
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindModalAware(gocui.KeyArrowLeft, func() error {
		a.FocusPrevious()
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindModalAware(gocui.KeyArrowUp, func() error {
		switch p := a.GetCurrentPanel().(type) {
		case *RailPanel:
			p.SelectPrev()
		case *NavigatorPanel:
			p.SelectPrev()
		case *EditorPanel:
			p.ScrollUp()
		case *SlotPanel:
			p.ScrollUp()
		case *ConsolePanel:
			p.ScrollUp()
		}
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindModalAware(gocui.KeyArrowDown, func() error {
		switch p := a.GetCurrentPanel().(type) {
		case *RailPanel:
			p.SelectNext()
		case *NavigatorPanel:
			p.SelectNext()
		case *EditorPanel:
			p.ScrollDown()
		case *SlotPanel:
			p.ScrollDown()
		case *ConsolePanel:
			p.ScrollDown()
		}
		return nil
	}); err != nil {
		return err
	}

	// Enter activates the selection in list-like panels
	if err := a.g.SetKeybinding("", gocui.KeyEnter, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasActiveModal() {
			// MessageModal: close on Enter
			if _, ok := a.activeModal.(*MessageModal); ok {
				a.CloseModal()
				return nil
			}
			return a.activeModal.HandleKey(gocui.KeyEnter, gocui.ModNone)
		}
		switch p := a.GetCurrentPanel().(type) {
		case *RailPanel:
			p.ToggleSelected()
		case *NavigatorPanel:
			p.OpenSelected()
		}
		return nil
	}); err != nil {
		return err
	}

	// Home/End jump within the focused panel
	if err := a.bindModalAware(gocui.KeyHome, func() error {
		switch p := a.GetCurrentPanel().(type) {
		case *RailPanel:
			p.ScrollToTop()
		case *NavigatorPanel:
			p.ScrollToTop()
		case *EditorPanel:
			p.ScrollToTop()
		case *SlotPanel:
			p.ScrollToTop()
		case *ConsolePanel:
			p.ScrollToTop()
		}
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindModalAware(gocui.KeyEnd, func() error {
		switch p := a.GetCurrentPanel().(type) {
		case *RailPanel:
			p.ScrollToBottom()
		case *NavigatorPanel:
			p.ScrollToBottom()
		case *EditorPanel:
			p.ScrollToBottom()
		case *SlotPanel:
			p.ScrollToBottom()
		case *ConsolePanel:
			p.ScrollToBottom()
		}
		return nil
	}); err != nil {
		return err
	}

	// Layout toggles
	if err := a.bindGlobal('s', func() error {
		a.Dispatch(layout.ToggleRightSidebar{})
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('b', func() error {
		a.Dispatch(layout.ToggleBottomPanel{})
		return nil
	}); err != nil {
		return err
	}

	// 'p' picks a layout preset
	if err := a.bindGlobal('p', func() error {
		a.openPresetModal()
		return nil
	}); err != nil {
		return err
	}

	// 'a' adds a sidebar panel
	if err := a.bindGlobal('a', func() error {
		a.openAddPanelModal()
		return nil
	}); err != nil {
		return err
	}

	// 'x' removes the focused sidebar panel
	if err := a.bindGlobal('x', func() error {
		if p, ok := a.GetCurrentPanel().(*SlotPanel); ok {
			a.Dispatch(layout.RemoveSidebarComponent{Content: p.Content()})
		}
		return nil
	}); err != nil {
		return err
	}

	// 'e' expands the focused sidebar panel, 'E' restores the stacked layout
	if err := a.bindGlobal('e', func() error {
		if p, ok := a.GetCurrentPanel().(*SlotPanel); ok {
			a.Dispatch(layout.ExpandSidebarComponent{Content: p.Content()})
		}
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('E', func() error {
		a.Dispatch(layout.RestoreSidebarLayout{})
		return nil
	}); err != nil {
		return err
	}

	// Bottom panel tab cycling and pinning
	if err := a.bindGlobal(']', func() error {
		a.console.NextTab()
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('[', func() error {
		a.console.PrevTab()
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('P', func() error {
		a.Dispatch(layout.PinBottomPanelTab{Tab: a.coordinator.State().Bottom.ActiveTab})
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('U', func() error {
		a.Dispatch(layout.UnpinBottomPanelTab{Tab: a.coordinator.State().Bottom.ActiveTab})
		return nil
	}); err != nil {
		return err
	}

	// Geometry nudges
	if err := a.bindGlobal('+', func() error {
		a.Dispatch(layout.SetRightSidebarWidth{Width: a.coordinator.State().SidebarWidth + sidebarWidthStep})
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('-', func() error {
		a.Dispatch(layout.SetRightSidebarWidth{Width: a.coordinator.State().SidebarWidth - sidebarWidthStep})
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('>', func() error {
		a.Dispatch(layout.SetBottomPanelHeight{Height: a.coordinator.State().Bottom.Height + bottomPanelHeightStep})
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('<', func() error {
		a.Dispatch(layout.SetBottomPanelHeight{Height: a.coordinator.State().Bottom.Height - bottomPanelHeightStep})
		return nil
	}); err != nil {
		return err
	}

	// Toolchain
	if err := a.bindGlobal('B', func() error {
		a.RunBuild()
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('T', func() error {
		a.RunTests()
		return nil
	}); err != nil {
		return err
	}

	// Assistant
	if err := a.bindGlobal('c', func() error {
		a.chat.Ask()
		return nil
	}); err != nil {
		return err
	}
	if err := a.bindGlobal('C', func() error {
		a.chat.ExtendInput()
		return nil
	}); err != nil {
		return err
	}

	// 'o' cycles the panel coordination mode
	if err := a.bindGlobal('o', func() error {
		mode := a.coordinator.State().Coordination
		a.Dispatch(layout.SetCoordinationMode{Mode: (mode + 1) % 4})
		return nil
	}); err != nil {
		return err
	}

	// 'm' bookmarks the open file
	if err := a.bindGlobal('m', func() error {
		a.ToggleBookmark()
		return nil
	}); err != nil {
		return err
	}

	// '/' searches file names into the search slot
	if err := a.bindGlobal('/', func() error {
		a.openSearchModal()
		return nil
	}); err != nil {
		return err
	}

	// '?' asks for help; the trigger rules open the documentation slot
	if err := a.bindGlobal('?', func() error {
		a.RequestHelp()
		return nil
	}); err != nil {
		return err
	}

	// 'r' refreshes the workspace panels
	if err := a.bindGlobal('r', func() error {
		a.RefreshAll()
		return nil
	}); err != nil {
		return err
	}

	// 'y'/'n' pass through to ConfirmModal
	if err := a.g.SetKeybinding("", 'y', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasActiveModal() {
			return a.activeModal.HandleKey('y', gocui.ModNone)
		}
		return nil
	}); err != nil {
		return err
	}
	if err := a.g.SetKeybinding("", 'n', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasActiveModal() {
			return a.activeModal.HandleKey('n', gocui.ModNone)
		}
		return nil
	}); err != nil {
		return err
	}

	return nil
}

// openPresetModal lists the preset catalog and applies the selection.
func (a *App) openPresetModal() {
	catalog := a.coordinator.Reducer().Presets()

	descriptions := map[layout.Preset]string{
		layout.PresetCoding:     "Terminal at the bottom, nothing else in the way.",
		layout.PresetDebugging:  "Inspector and chat side panels with the debug tab open.",
		layout.PresetTesting:    "Output and problems tabs pinned at the bottom.",
		layout.PresetReviewing:  "Chat and preview side panels with the git tab open.",
		layout.PresetLearning:   "Documentation and walkthrough side panels.",
		layout.PresetFocused:    "Everything hidden; just the editor.",
		layout.PresetPresenting: "A wide preview panel beside the editor.",
	}

	items := make([]ListModalItem, 0, len(catalog.Presets()))
	for _, preset := range catalog.Presets() {
		preset := preset
		items = append(items, ListModalItem{
			Label:       string(preset),
			Description: descriptions[preset],
			OnSelect: func() error {
				a.CloseModal()
				a.Dispatch(layout.ApplyPreset{Preset: preset})
				return nil
			},
		})
	}

	a.OpenModal(NewListModal(a.g, "Layout Presets", items, a.CloseModal))
}

// openAddPanelModal lists the sidebar content kinds that are not showing.
func (a *App) openAddPanelModal() {
	state := a.coordinator.State()
	reg := a.coordinator.Reducer().Registry()

	var items []ListModalItem
	for _, d := range reg.ListCategory(layout.CategorySidebar) {
		if state.Sidebar.Contains(d.Content) {
			continue
		}
		content := d.Content
		description := fmt.Sprintf("Add the %s panel to the right sidebar.", d.Title)
		items = append(items, ListModalItem{
			Label:       d.Title,
			Description: description,
			OnSelect: func() error {
				a.CloseModal()
				a.Dispatch(layout.AddSidebarComponent{Content: content})
				a.Dispatch(layout.ClearBadge{Content: content})
				return nil
			},
		})
	}

	if len(items) == 0 {
		a.OpenModal(NewMessageModal(a.g, "Add Panel", "Every panel is already showing."))
		return
	}

	a.OpenModal(NewListModal(a.g, "Add Panel", items, a.CloseModal))
}

// openSearchModal prompts for a file name query and shows the search slot.
func (a *App) openSearchModal() {
	modal := NewInputModal(a.g, "Search files", func(input string) {
		a.CloseModal()
		a.searchQuery = input
		if input == "" {
			return
		}
		if !a.coordinator.State().Sidebar.Contains(layout.ContentSearch) {
			a.Dispatch(layout.AddSidebarComponent{Content: layout.ContentSearch})
		}
	}, func() {
		a.CloseModal()
	})

	a.OpenModal(modal)
}
