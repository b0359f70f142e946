package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/flowkit-dev/flowkit/pkg/layout"
)

// iconGlyphs maps descriptor icon identifiers to single-cell glyphs.
var iconGlyphs = map[string]string{
	"bubble":    "◆",
	"bell":      "◉",
	"book":      "▤",
	"signpost":  "➤",
	"eye":       "◎",
	"scope":     "✜",
	"magnifier": "◌",
	"clock":     "◷",
	"bookmark":  "▹",
	"list":      "≡",
	"prompt":    ">",
	"log":       "▤",
	"triangle":  "▲",
	"bug":       "✱",
	"branch":    "⎇",
}

// RailPanel lists the registered sidebar content kinds. Selecting an entry
// adds it to the sidebar; selecting a visible entry removes it again.
type RailPanel struct {
	BasePanel
	app         *App
	selectedIdx int
	originY     int
}

func NewRailPanel(g *gocui.Gui, app *App) *RailPanel {
	return &RailPanel{
		BasePanel: NewBasePanel(ViewRail, g),
		app:       app,
	}
}

// entries returns the sidebar descriptors in rail order.
func (r *RailPanel) entries() []layout.Descriptor {
	return r.app.coordinator.Reducer().Registry().ListCategory(layout.CategorySidebar)
}

func (r *RailPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := r.g.SetView(r.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	r.SetupView(v, "Panels")
	state := r.app.coordinator.State()

	for i, d := range r.entries() {
		marker := "○"
		if state.Sidebar.Contains(d.Content) {
			marker = "●"
		}

		glyph := iconGlyphs[d.Icon]
		if glyph == "" {
			glyph = "·"
		}

		line := fmt.Sprintf("%s %s %s", marker, glyph, d.Title)
		if badge := state.Badge(d.Content); badge > 0 {
			line += " " + Yellow(fmt.Sprintf("(%d)", badge))
		}

		if i == r.selectedIdx && r.focused {
			fmt.Fprintln(v, Stylize(line, Style{FgColor: ColorCyan, Bold: true}))
		} else if state.Sidebar.Contains(d.Content) {
			fmt.Fprintln(v, line)
		} else {
			fmt.Fprintln(v, Gray(line))
		}
	}

	AdjustOrigin(v, &r.originY)
	v.SetOrigin(0, r.originY)

	return nil
}

// SelectNext moves the selection down (circular)
func (r *RailPanel) SelectNext() {
	n := len(r.entries())
	if n == 0 {
		return
	}
	r.selectedIdx = (r.selectedIdx + 1) % n
}

// SelectPrev moves the selection up (circular)
func (r *RailPanel) SelectPrev() {
	n := len(r.entries())
	if n == 0 {
		return
	}
	r.selectedIdx = (r.selectedIdx - 1 + n) % n
}

// ToggleSelected adds the selected content to the sidebar, or removes it
// when it is already showing.
func (r *RailPanel) ToggleSelected() {
	entries := r.entries()
	if r.selectedIdx < 0 || r.selectedIdx >= len(entries) {
		return
	}

	content := entries[r.selectedIdx].Content
	if r.app.coordinator.State().Sidebar.Contains(content) {
		r.app.Dispatch(layout.RemoveSidebarComponent{Content: content})
	} else {
		r.app.Dispatch(layout.AddSidebarComponent{Content: content})
		r.app.Dispatch(layout.ClearBadge{Content: content})
	}
}

// handleRowClick toggles the clicked rail entry.
func (r *RailPanel) handleRowClick(y int) error {
	idx := y + r.originY
	if idx < 0 || idx >= len(r.entries()) {
		return nil
	}
	r.selectedIdx = idx
	r.ToggleSelected()
	return nil
}

func (r *RailPanel) ScrollUpByWheel() {
	if r.originY > 0 {
		r.originY--
	}
}

func (r *RailPanel) ScrollDownByWheel() {
	if r.originY < maxOriginFor(r.v) {
		r.originY++
	}
}

func (r *RailPanel) ScrollToTop() {
	r.selectedIdx = 0
	r.originY = 0
}

func (r *RailPanel) ScrollToBottom() {
	if n := len(r.entries()); n > 0 {
		r.selectedIdx = n - 1
	}
	r.originY = maxOriginFor(r.v)
}
