package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/flowkit-dev/flowkit/pkg/git"
)

// EditorPanel shows the opened file with syntax highlighting. It is a
// read-only viewer; editing happens in the user's editor of choice.
type EditorPanel struct {
	BasePanel
	app      *App
	fileName string // Relative to the workspace root
	raw      string
	rendered string // Highlighted content
	modified bool
	loadErr  error
	originY  int
}

func NewEditorPanel(g *gocui.Gui, app *App) *EditorPanel {
	return &EditorPanel{
		BasePanel: NewBasePanel(ViewEditor, g),
		app:       app,
	}
}

// FileName returns the open file path relative to the workspace root,
// empty when nothing is open.
func (e *EditorPanel) FileName() string {
	return e.fileName
}

// Open loads a workspace file into the panel.
func (e *EditorPanel) Open(relPath string) {
	e.fileName = relPath
	e.originY = 0

	absPath := filepath.Join(e.app.project.Root, relPath)
	data, err := os.ReadFile(absPath)
	if err != nil {
		e.raw = ""
		e.rendered = ""
		e.loadErr = err
		return
	}

	e.loadErr = nil
	e.raw = string(data)
	e.rendered = highlightSource(e.raw, relPath)
	e.modified = git.IsFileModified(e.app.project.Root, absPath)
}

func (e *EditorPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := e.g.SetView(e.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	title := "Editor"
	if e.fileName != "" {
		title = e.fileName
		if e.modified {
			title += " ●"
		}
	}
	e.SetupView(v, title)

	if e.fileName == "" {
		fmt.Fprintln(v, Gray("Select a file in the navigator to open it"))
		return nil
	}
	if e.loadErr != nil {
		fmt.Fprintln(v, Red("Cannot read file"))
		fmt.Fprintln(v, Gray(e.loadErr.Error()))
		return nil
	}

	fmt.Fprint(v, e.rendered)

	AdjustOrigin(v, &e.originY)
	v.SetOrigin(0, e.originY)

	return nil
}

// Outline extracts top-level declarations from the open file. It is a
// heuristic over common keywords, good enough for the outline slot.
func (e *EditorPanel) Outline() []string {
	if e.raw == "" {
		return nil
	}

	prefixes := []string{"func ", "type ", "class ", "def ", "struct ", "impl ", "fn "}
	var out []string
	for i, line := range strings.Split(e.raw, "\n") {
		for _, prefix := range prefixes {
			if strings.HasPrefix(line, prefix) {
				out = append(out, fmt.Sprintf("%s %s", Gray(fmt.Sprintf("%4d", i+1)), strings.TrimSuffix(line, " {")))
				break
			}
		}
	}
	return out
}

func (e *EditorPanel) ScrollUp() {
	if e.originY > 0 {
		e.originY--
	}
}

func (e *EditorPanel) ScrollDown() {
	if e.originY < maxOriginFor(e.v) {
		e.originY++
	}
}

func (e *EditorPanel) ScrollUpByWheel() {
	if e.originY > 0 {
		e.originY -= 2
		if e.originY < 0 {
			e.originY = 0
		}
	}
}

func (e *EditorPanel) ScrollDownByWheel() {
	maxOrigin := maxOriginFor(e.v)
	if e.originY < maxOrigin {
		e.originY += 2
		if e.originY > maxOrigin {
			e.originY = maxOrigin
		}
	}
}

func (e *EditorPanel) ScrollToTop() {
	e.originY = 0
}

func (e *EditorPanel) ScrollToBottom() {
	e.originY = maxOriginFor(e.v)
}
