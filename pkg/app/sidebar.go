package app

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/flowkit-dev/flowkit/pkg/layout"
)

// SlotPanel renders one sidebar slot. One instance exists per content kind;
// the layout manager draws whichever the layout state makes visible.
type SlotPanel struct {
	BasePanel
	app     *App
	content layout.Content
	title   string
	originY int
}

func NewSlotPanel(g *gocui.Gui, app *App, content layout.Content) *SlotPanel {
	title := string(content)
	if d, err := app.coordinator.Reducer().Registry().Get(content); err == nil {
		title = d.Title
	}
	return &SlotPanel{
		BasePanel: NewBasePanel(SlotViewID(content), g),
		app:       app,
		content:   content,
		title:     title,
	}
}

// Content returns the content kind this slot renders.
func (s *SlotPanel) Content() layout.Content {
	return s.content
}

func (s *SlotPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := s.g.SetView(s.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	s.SetupView(v, s.title)
	v.Wrap = true

	switch s.content {
	case layout.ContentChat:
		s.drawChat(v)
	case layout.ContentNotifications:
		s.drawNotifications(v)
	case layout.ContentDocumentation:
		s.drawDocumentation(v)
	case layout.ContentWalkthrough:
		s.drawWalkthrough(v)
	case layout.ContentPreview:
		s.drawPreview(v)
	case layout.ContentInspector:
		s.drawInspector(v)
	case layout.ContentSearch:
		s.drawSearch(v)
	case layout.ContentHistory:
		s.drawList(v, s.app.history, "No files opened yet")
	case layout.ContentBookmarks:
		s.drawList(v, s.app.bookmarks, "No bookmarks ('m' bookmarks the open file)")
	case layout.ContentOutline:
		s.drawOutline(v)
	default:
		fmt.Fprintln(v, Gray("Nothing to show"))
	}

	AdjustOrigin(v, &s.originY)
	v.SetOrigin(0, s.originY)

	return nil
}

func (s *SlotPanel) drawChat(v *gocui.View) {
	messages := s.app.chat.Messages()
	if len(messages) == 0 {
		if !s.app.adapter.IsAvailable() {
			fmt.Fprintln(v, Yellow("Assistant is not configured"))
			fmt.Fprintln(v, Gray("Set "+s.app.cfg.Assist.APIKeyEnv+" to enable it"))
			return
		}
		fmt.Fprintln(v, Gray("Press 'c' to ask the assistant"))
		return
	}

	for _, msg := range messages {
		switch msg.Role {
		case "user":
			fmt.Fprintln(v, Cyan("You"))
		default:
			fmt.Fprintln(v, Green(s.app.adapter.ModelName()))
		}
		fmt.Fprintln(v, msg.Content)
		fmt.Fprintln(v)
	}

	if s.app.chat.Waiting() {
		fmt.Fprintln(v, Gray("thinking..."))
	}
}

func (s *SlotPanel) drawNotifications(v *gocui.View) {
	if len(s.app.notifications) == 0 {
		fmt.Fprintln(v, Gray("No notifications"))
		return
	}
	// Most recent first
	for i := len(s.app.notifications) - 1; i >= 0; i-- {
		fmt.Fprintln(v, s.app.notifications[i])
	}
}

func (s *SlotPanel) drawDocumentation(v *gocui.View) {
	fmt.Fprintln(v, Bold("Key reference"))
	fmt.Fprintln(v)
	for _, entry := range [][2]string{
		{"tab / shift-tab", "cycle panel focus"},
		{"s", "toggle right sidebar"},
		{"b", "toggle bottom panel"},
		{"p", "apply a layout preset"},
		{"a", "add a sidebar panel"},
		{"x", "remove the focused sidebar panel"},
		{"e / E", "expand / restore a sidebar panel"},
		{"] / [", "cycle bottom panel tabs"},
		{"P / U", "pin / unpin the active tab"},
		{"+ / -", "widen / narrow the sidebar"},
		{"> / <", "grow / shrink the bottom panel"},
		{"B / T", "run the build / tests"},
		{"c", "ask the assistant"},
		{"m", "bookmark the open file"},
		{"r", "refresh the workspace"},
		{"q", "quit"},
	} {
		fmt.Fprintf(v, "%s  %s\n", Cyan(entry[0]), entry[1])
	}
}

func (s *SlotPanel) drawWalkthrough(v *gocui.View) {
	fmt.Fprintln(v, Bold("Getting started"))
	fmt.Fprintln(v)
	steps := []string{
		"Pick a file in the navigator and press Enter to open it",
		"Press 'B' to build; failures open the problems tab on their own",
		"Press 'T' to run the tests",
		"Press 'c' to ask the assistant about the output",
		"Press 'p' to switch the whole layout to a task preset",
	}
	for i, step := range steps {
		fmt.Fprintf(v, "%s %s\n", Cyan(fmt.Sprintf("%d.", i+1)), step)
	}
}

func (s *SlotPanel) drawPreview(v *gocui.View) {
	if s.app.editor.FileName() == "" {
		fmt.Fprintln(v, Gray("Open a file to preview it"))
		return
	}
	fmt.Fprintln(v, Gray(s.app.editor.FileName()))
	fmt.Fprintln(v)
	fmt.Fprint(v, s.app.editor.raw)
}

func (s *SlotPanel) drawInspector(v *gocui.View) {
	state := s.app.coordinator.State()
	project := s.app.project

	row := func(k, val string) {
		fmt.Fprintf(v, "%s %s\n", Gray(k+":"), val)
	}
	row("project", project.Name)
	row("kind", string(project.Kind))
	if s.app.gitInfo.IsRepository {
		row("branch", s.app.gitInfo.BranchName)
	}
	row("file", s.app.editor.FileName())
	fmt.Fprintln(v)
	row("sidebar", state.Sidebar.Mode.String())
	row("width", fmt.Sprintf("%.0f", state.SidebarWidth))
	if len(state.SplitRatios) > 1 {
		parts := make([]string, len(state.SplitRatios))
		for i, r := range state.SplitRatios {
			parts[i] = fmt.Sprintf("%.2f", r)
		}
		row("ratios", strings.Join(parts, " / "))
	}
	row("coordination", state.Coordination.String())
	row("errors", fmt.Sprintf("%d", s.app.console.ErrorCount()))
	row("warnings", fmt.Sprintf("%d", s.app.console.WarningCount()))
}

func (s *SlotPanel) drawSearch(v *gocui.View) {
	query, results := s.app.searchResults()
	if query == "" {
		fmt.Fprintln(v, Gray("Press '/' to search file names"))
		return
	}
	fmt.Fprintln(v, Gray("query: ")+Bold(query))
	fmt.Fprintln(v)
	if len(results) == 0 {
		fmt.Fprintln(v, Gray("No matches"))
		return
	}
	for _, r := range results {
		fmt.Fprintln(v, r)
	}
}

func (s *SlotPanel) drawList(v *gocui.View, items []string, emptyMsg string) {
	if len(items) == 0 {
		fmt.Fprintln(v, Gray(emptyMsg))
		return
	}
	for i := len(items) - 1; i >= 0; i-- {
		fmt.Fprintln(v, items[i])
	}
}

func (s *SlotPanel) drawOutline(v *gocui.View) {
	entries := s.app.editor.Outline()
	if len(entries) == 0 {
		fmt.Fprintln(v, Gray("No outline for the open file"))
		return
	}
	for _, e := range entries {
		fmt.Fprintln(v, e)
	}
}

func (s *SlotPanel) ScrollUp() {
	if s.originY > 0 {
		s.originY--
	}
}

func (s *SlotPanel) ScrollDown() {
	if s.originY < maxOriginFor(s.v) {
		s.originY++
	}
}

func (s *SlotPanel) ScrollUpByWheel() {
	if s.originY > 0 {
		s.originY -= 2
		if s.originY < 0 {
			s.originY = 0
		}
	}
}

func (s *SlotPanel) ScrollDownByWheel() {
	maxOrigin := maxOriginFor(s.v)
	if s.originY < maxOrigin {
		s.originY += 2
		if s.originY > maxOrigin {
			s.originY = maxOrigin
		}
	}
}

func (s *SlotPanel) ScrollToTop() {
	s.originY = 0
}

func (s *SlotPanel) ScrollToBottom() {
	s.originY = maxOriginFor(s.v)
}
