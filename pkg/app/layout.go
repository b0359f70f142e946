package app

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/flowkit-dev/flowkit/pkg/layout"
)

// rectToDim converts a calculator frame to gocui view coordinates.
func rectToDim(r layout.Rect) boxlayout.Dimensions {
	return boxlayout.Dimensions{
		X0: int(r.X),
		Y0: int(r.Y),
		X1: int(r.X+r.Width) - 1,
		Y1: int(r.Y+r.Height) - 1,
	}
}

func (a *App) layoutManager(g *gocui.Gui) error {
	width, height := g.Size()

	// Bottom row is the status bar; the calculator arranges the rest
	vp := layout.Viewport{Width: float64(width), Height: float64(height - 1)}
	frames := a.coordinator.Frames(vp)
	state := a.coordinator.State()

	// The main column fills whatever the sidebar and bottom panel leave over
	mainWidth := width
	if !frames.RightSidebar.Empty() {
		mainWidth = int(frames.RightSidebar.X)
	}
	mainHeight := height - 1
	if !frames.BottomPanel.Empty() {
		mainHeight = int(frames.BottomPanel.Y)
	}

	root := &boxlayout.Box{
		Direction: boxlayout.COLUMN,
		Children: []*boxlayout.Box{
			{
				Window: ViewRail,
				Size:   22,
			},
			{
				Window: ViewNavigator,
				Size:   32,
			},
			{
				Window: ViewEditor,
				Weight: 1,
			},
		},
	}

	dimensionMap := boxlayout.ArrangeWindows(root, 0, 0, mainWidth, mainHeight)

	for id, dim := range dimensionMap {
		if panel, ok := a.panels[id]; ok {
			if err := panel.Draw(dim); err != nil {
				return err
			}
		}
	}

	// Sidebar slots are dynamic views keyed by content; stale ones are
	// deleted so removed components disappear immediately
	liveSlots := make(map[string]bool, len(frames.Components))
	for _, cf := range frames.Components {
		if cf.Frame.Empty() {
			continue
		}
		panel := a.slotPanel(cf.Content)
		if err := panel.Draw(rectToDim(cf.Frame)); err != nil {
			return err
		}
		liveSlots[panel.ID()] = true
	}
	for id := range a.liveSlots {
		if !liveSlots[id] {
			g.DeleteView(id)
		}
	}
	a.liveSlots = liveSlots

	if !frames.BottomPanel.Empty() {
		if err := a.console.Draw(rectToDim(frames.BottomPanel)); err != nil {
			return err
		}
	} else {
		g.DeleteView(ViewBottom)
	}

	if statusbar, ok := a.panels[ViewStatusbar]; ok {
		if err := statusbar.Draw(boxlayout.Dimensions{
			X0: 0,
			Y0: height - 1,
			X1: width - 1,
			Y1: height - 1,
		}); err != nil {
			return err
		}
	}

	a.rebuildFocusOrder(state)

	// Render modal if active (modal is rendered on top of panels)
	if a.activeModal != nil {
		if err := a.activeModal.Draw(boxlayout.Dimensions{
			X0: 0,
			Y0: 0,
			X1: width,
			Y1: height,
		}); err != nil {
			return err
		}

		_, err := g.SetCurrentView(a.activeModal.ID())
		if err != nil && err.Error() != "unknown view" {
			// Ignore "unknown view" error
		}
	} else {
		if len(a.focusOrder) > 0 && a.currentFocus < len(a.focusOrder) {
			currentViewID := a.focusOrder[a.currentFocus]
			_, err := g.SetCurrentView(currentViewID)
			if err != nil && err.Error() != "unknown view" {
				// Ignore "unknown view" error (happens during initialization)
			}
		}
	}

	return nil
}

// rebuildFocusOrder recomputes the focus cycle from the layout state: the
// fixed main panels, then the visible sidebar slots, then the bottom panel.
// The focused panel keeps focus when it survives the rebuild.
func (a *App) rebuildFocusOrder(state layout.State) {
	var focusedID string
	if a.currentFocus >= 0 && a.currentFocus < len(a.focusOrder) {
		focusedID = a.focusOrder[a.currentFocus]
	}

	order := []string{ViewRail, ViewNavigator, ViewEditor}
	for _, c := range state.Sidebar.Contents() {
		order = append(order, SlotViewID(c))
	}
	if state.Bottom.Visible {
		order = append(order, ViewBottom)
	}

	a.focusOrder = order
	a.currentFocus = 0
	for i, id := range order {
		if id == focusedID {
			a.currentFocus = i
			return
		}
	}

	// The focused panel left the screen; fall back to the editor
	if !a.HasActiveModal() {
		for i, id := range order {
			if id == ViewEditor {
				a.currentFocus = i
				break
			}
		}
		if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
			panel.OnFocus()
		}
	}
}
