package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// NavigatorPanel lists the workspace files. Enter opens the selected file
// in the editor panel.
type NavigatorPanel struct {
	BasePanel
	app         *App
	files       []string
	loadErr     error
	selectedIdx int
	originY     int
}

func NewNavigatorPanel(g *gocui.Gui, app *App) *NavigatorPanel {
	p := &NavigatorPanel{
		BasePanel: NewBasePanel(ViewNavigator, g),
		app:       app,
	}
	p.Refresh()
	return p
}

// Refresh re-reads the workspace file listing.
func (n *NavigatorPanel) Refresh() {
	files, err := n.app.project.ListFiles(n.app.cfg.Scan.MaxDepth, n.app.cfg.Scan.ExcludeDirs)
	n.files = files
	n.loadErr = err

	if n.selectedIdx >= len(n.files) {
		n.selectedIdx = 0
		n.originY = 0
	}
}

func (n *NavigatorPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := n.g.SetView(n.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	n.SetupView(v, fmt.Sprintf("Files (%d)", len(n.files)))
	v.Highlight = n.focused
	v.SelBgColor = SelectionBgColor

	if n.loadErr != nil {
		fmt.Fprintln(v, Red("Cannot list workspace files"))
		fmt.Fprintln(v, Gray(n.loadErr.Error()))
		return nil
	}

	for _, file := range n.files {
		fmt.Fprintln(v, file)
	}

	AdjustOrigin(v, &n.originY)
	v.SetCursor(0, n.selectedIdx-n.originY)
	v.SetOrigin(0, n.originY)

	return nil
}

// SelectedFile returns the selected path relative to the workspace root.
func (n *NavigatorPanel) SelectedFile() (string, bool) {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.files) {
		return "", false
	}
	return n.files[n.selectedIdx], true
}

// OpenSelected loads the selected file into the editor.
func (n *NavigatorPanel) OpenSelected() {
	file, ok := n.SelectedFile()
	if !ok {
		return
	}
	n.app.editor.Open(file)
	n.app.recordFileOpened(file)
}

func (n *NavigatorPanel) SelectNext() {
	if len(n.files) == 0 {
		return
	}
	n.selectedIdx++
	if n.selectedIdx >= len(n.files) {
		n.selectedIdx = 0
		n.originY = 0
		return
	}
	if n.v != nil {
		_, h := n.v.Size()
		if n.selectedIdx-n.originY >= h-2 {
			n.originY++
		}
	}
}

func (n *NavigatorPanel) SelectPrev() {
	if len(n.files) == 0 {
		return
	}
	n.selectedIdx--
	if n.selectedIdx < 0 {
		n.selectedIdx = len(n.files) - 1
		n.originY = maxOriginFor(n.v)
		return
	}
	if n.selectedIdx < n.originY {
		n.originY--
	}
}

func (n *NavigatorPanel) ScrollUpByWheel() {
	if n.originY > 0 {
		n.originY -= 2
		if n.originY < 0 {
			n.originY = 0
		}
	}
}

func (n *NavigatorPanel) ScrollDownByWheel() {
	maxOrigin := maxOriginFor(n.v)
	if n.originY < maxOrigin {
		n.originY += 2
		if n.originY > maxOrigin {
			n.originY = maxOrigin
		}
	}
}

func (n *NavigatorPanel) ScrollToTop() {
	n.selectedIdx = 0
	n.originY = 0
}

func (n *NavigatorPanel) ScrollToBottom() {
	if len(n.files) > 0 {
		n.selectedIdx = len(n.files) - 1
	}
	n.originY = maxOriginFor(n.v)
}
