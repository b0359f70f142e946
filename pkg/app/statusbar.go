package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

type StatusBar struct {
	BasePanel
	app *App // Reference to App for accessing command state
}

func NewStatusBar(g *gocui.Gui, app *App) *StatusBar {
	return &StatusBar{
		BasePanel: NewBasePanel(ViewStatusbar, g),
		app:       app,
	}
}

func (s *StatusBar) Draw(dim boxlayout.Dimensions) error {
	// StatusBar has no frame, so adjust dimensions
	frameOffset := 1
	x0 := dim.X0 - frameOffset
	y0 := dim.Y0 - frameOffset
	x1 := dim.X1 + frameOffset
	y1 := dim.Y1 + frameOffset

	v, err := s.g.SetView(s.id, x0, y0, x1, y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	s.v = v
	v.Clear()
	v.Frame = false

	var leftContent string
	var visibleLen int

	// Show spinner if command is running
	if s.app.commandRunning.Load() {
		frameIndex := s.app.spinnerFrame.Load()
		spinner := string(spinnerFrames[frameIndex])

		taskName := ""
		if val := s.app.runningCommandName.Load(); val != nil {
			taskName = val.(string)
		}

		leftContent = fmt.Sprintf(" %s %s ", Cyan(spinner), Gray(taskName))
		visibleLen += 1 + 1 + 1 + len(taskName) + 1
	} else {
		leftContent = " "
		visibleLen += 1
	}

	// Helper to format key binding: [k]ey -> [Cyan(k)]Gray(ey)
	appendKey := func(key, desc string) {
		styled := fmt.Sprintf("[%s]%s", Cyan(key), Gray(desc))
		vLen := 1 + len(key) + 1 + len(desc)

		leftContent += styled + " "
		visibleLen += vLen + 1
	}

	appendKey("s", "idebar")
	appendKey("b", "ottom")
	appendKey("p", "reset")
	appendKey("a", "dd")
	appendKey("B", "uild")
	appendKey("T", "est")
	appendKey("c", "hat")
	appendKey("?", "help")

	// Right content: repository, branch, version
	repo := s.app.project.Name
	branch := ""
	if s.app.gitInfo.IsRepository {
		branch = s.app.gitInfo.BranchName
	}

	styledRight := Blue(repo)
	rightLen := len(repo)
	if branch != "" {
		styledRight += fmt.Sprintf(" %s", Magenta(branch))
		rightLen += 1 + len(branch)
	}
	styledRight += fmt.Sprintf(" %s", Gray(s.app.version))
	rightLen += 1 + len(s.app.version)

	// Calculate padding
	viewWidth, _ := v.Size()
	paddingLen := viewWidth - visibleLen - rightLen - 2

	if paddingLen < 1 {
		paddingLen = 1
	}

	padding := ""
	for i := 0; i < paddingLen; i++ {
		padding += " "
	}

	fmt.Fprint(v, leftContent+padding+styledRight)

	return nil
}

// The status bar never takes focus
func (s *StatusBar) OnFocus() {}
func (s *StatusBar) OnBlur()  {}
