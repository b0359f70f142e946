package app

import (
	"fmt"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/flowkit-dev/flowkit/pkg/git"
	"github.com/flowkit-dev/flowkit/pkg/layout"
)

// Problem is one diagnostic parsed from build or test output.
type Problem struct {
	File     string
	Line     int
	Col      int
	Message  string
	Severity string // "error" or "warning"
}

// ConsolePanel renders the bottom panel with its tab row. Which tab is
// active lives in the layout state; the panel only holds the tab contents.
type ConsolePanel struct {
	BasePanel
	app *App

	terminal  string
	output    string
	debugLog  string
	gitStatus string
	problems  []Problem

	origins            map[layout.Content]int
	autoScrollToBottom bool
}

func NewConsolePanel(g *gocui.Gui, app *App) *ConsolePanel {
	c := &ConsolePanel{
		BasePanel: NewBasePanel(ViewBottom, g),
		app:       app,
		origins:   make(map[layout.Content]int),
	}
	// The git tab is drawable before the first refresh
	c.RefreshGitTab()
	return c
}

// tabs returns the bottom tab contents in registry order.
func (c *ConsolePanel) tabs() []layout.Content {
	descriptors := c.app.coordinator.Reducer().Registry().ListCategory(layout.CategoryBottom)
	out := make([]layout.Content, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Content
	}
	return out
}

func (c *ConsolePanel) Draw(dim boxlayout.Dimensions) error {
	v, err := c.g.SetView(c.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	c.SetupView(v, "")
	v.Wrap = true

	state := c.app.coordinator.State()
	reg := c.app.coordinator.Reducer().Registry()

	tabs := c.tabs()
	titles := make([]string, len(tabs))
	activeIdx := 0
	for i, tab := range tabs {
		title := string(tab)
		if d, err := reg.Get(tab); err == nil {
			title = d.Title
		}
		if state.Bottom.IsPinned(tab) {
			title = "*" + title
		}
		if badge := state.Badge(tab); badge > 0 {
			title = fmt.Sprintf("%s(%d)", title, badge)
		}
		titles[i] = title
		if tab == state.Bottom.ActiveTab {
			activeIdx = i
		}
	}
	v.Tabs = titles
	v.TabIndex = activeIdx

	active := state.Bottom.ActiveTab
	switch active {
	case layout.ContentTerminal:
		fmt.Fprint(v, c.terminal)
	case layout.ContentOutput:
		fmt.Fprint(v, c.output)
	case layout.ContentProblems:
		c.drawProblems(v)
	case layout.ContentDebug:
		if c.debugLog == "" {
			fmt.Fprintln(v, Gray("No debug output"))
		} else {
			fmt.Fprint(v, c.debugLog)
		}
	case layout.ContentGit:
		c.drawGit(v)
	}

	originY := c.origins[active]
	if c.autoScrollToBottom {
		originY = maxOriginFor(v)
		c.autoScrollToBottom = false
	}
	AdjustOrigin(v, &originY)
	v.SetOrigin(0, originY)
	c.origins[active] = originY

	return nil
}

func (c *ConsolePanel) drawProblems(v *gocui.View) {
	if len(c.problems) == 0 {
		fmt.Fprintln(v, Gray("No problems detected"))
		return
	}
	for _, p := range c.problems {
		location := fmt.Sprintf("%s:%d", p.File, p.Line)
		if p.Col > 0 {
			location = fmt.Sprintf("%s:%d", location, p.Col)
		}
		marker := Red("✗")
		if p.Severity == "warning" {
			marker = Yellow("⚠")
		}
		fmt.Fprintf(v, "%s %s %s\n", marker, Cyan(location), p.Message)
	}
}

func (c *ConsolePanel) drawGit(v *gocui.View) {
	if !c.app.gitInfo.IsRepository {
		fmt.Fprintln(v, Gray("Not a git repository"))
		return
	}
	fmt.Fprintf(v, "%s %s\n\n", Gray("branch:"), c.app.gitInfo.BranchName)
	if c.gitStatus == "" {
		fmt.Fprintln(v, Gray("Working tree clean"))
		return
	}
	fmt.Fprint(v, c.gitStatus)
}

// activeTab returns the tab currently selected in the layout state.
func (c *ConsolePanel) activeTab() layout.Content {
	return c.app.coordinator.State().Bottom.ActiveTab
}

// handleTabClick routes a tab row click through the reducer.
func (c *ConsolePanel) handleTabClick(tabIndex int) error {
	tabs := c.tabs()
	if tabIndex < 0 || tabIndex >= len(tabs) {
		return nil
	}
	c.app.Dispatch(layout.SetBottomPanelTab{Tab: tabs[tabIndex]})
	c.app.Dispatch(layout.ClearBadge{Content: tabs[tabIndex]})
	return nil
}

// NextTab activates the following tab (circular)
func (c *ConsolePanel) NextTab() {
	c.cycleTab(1)
}

// PrevTab activates the preceding tab (circular)
func (c *ConsolePanel) PrevTab() {
	c.cycleTab(-1)
}

func (c *ConsolePanel) cycleTab(step int) {
	tabs := c.tabs()
	if len(tabs) == 0 {
		return
	}
	active := c.activeTab()
	idx := 0
	for i, tab := range tabs {
		if tab == active {
			idx = i
			break
		}
	}
	next := tabs[(idx+step+len(tabs))%len(tabs)]
	c.app.Dispatch(layout.SetBottomPanelTab{Tab: next})
	c.app.Dispatch(layout.ClearBadge{Content: next})
}

// AppendTerminal appends a line of command output to the terminal tab.
func (c *ConsolePanel) AppendTerminal(text string) {
	c.terminal += text + "\n"
	if c.activeTab() == layout.ContentTerminal {
		c.autoScrollToBottom = true
	}
}

// AppendDebug appends a line to the debug tab.
func (c *ConsolePanel) AppendDebug(text string) {
	c.debugLog += text + "\n"
}

// SetProblems replaces the problems list.
func (c *ConsolePanel) SetProblems(problems []Problem) {
	c.problems = problems
	c.origins[layout.ContentProblems] = 0
}

// ErrorCount returns the number of parsed errors.
func (c *ConsolePanel) ErrorCount() int {
	count := 0
	for _, p := range c.problems {
		if p.Severity != "warning" {
			count++
		}
	}
	return count
}

// WarningCount returns the number of parsed warnings.
func (c *ConsolePanel) WarningCount() int {
	count := 0
	for _, p := range c.problems {
		if p.Severity == "warning" {
			count++
		}
	}
	return count
}

// RefreshGitTab re-reads the git status shown in the git tab.
func (c *ConsolePanel) RefreshGitTab() {
	c.gitStatus = git.StatusSummary(c.app.project.Root)
}

// LogAction logs an action with timestamp and optional details
func (c *ConsolePanel) LogAction(action string, details ...string) {
	timestamp := time.Now().Format("15:04:05")

	if c.output != "" {
		c.output += "\n"
	}

	header := fmt.Sprintf("%s %s", Gray(timestamp), Stylize(action, Style{FgColor: ColorCyan, Bold: true}))
	c.output += header + "\n"

	for _, detail := range details {
		c.output += "  " + detail + "\n"
	}

	if c.activeTab() == layout.ContentOutput {
		c.autoScrollToBottom = true
	}
}

// LogActionRed logs an action in red (for errors/warnings)
func (c *ConsolePanel) LogActionRed(action string, details ...string) {
	timestamp := time.Now().Format("15:04:05")

	if c.output != "" {
		c.output += "\n"
	}

	header := fmt.Sprintf("%s %s", Gray(timestamp), Stylize(action, Style{FgColor: ColorRed, Bold: true}))
	c.output += header + "\n"

	for _, detail := range details {
		c.output += "  " + Red(detail) + "\n"
	}

	if c.activeTab() == layout.ContentOutput {
		c.autoScrollToBottom = true
	}
}

// LogEvent records a layout state change in the output tab.
func (c *ConsolePanel) LogEvent(event layout.Event) {
	description := describeEvent(event)
	if description == "" {
		return
	}

	timestamp := time.Now().Format("15:04:05")
	if c.output != "" {
		c.output += "\n"
	}
	c.output += fmt.Sprintf("%s %s\n", Gray(timestamp), Gray(description))
}

// describeEvent renders a reducer event as a log line.
func describeEvent(event layout.Event) string {
	switch e := event.(type) {
	case layout.SidebarShown:
		return fmt.Sprintf("sidebar shown (%s)", e.Sidebar.Mode)
	case layout.SidebarHidden:
		return "sidebar hidden"
	case layout.SidebarWidthChanged:
		return fmt.Sprintf("sidebar width %.0f", e.Width)
	case layout.ComponentAdded:
		return fmt.Sprintf("panel added: %s", e.Content)
	case layout.ComponentRemoved:
		return fmt.Sprintf("panel removed: %s", e.Content)
	case layout.SplitRatiosChanged:
		return "split ratios changed"
	case layout.SidebarExpanded:
		return fmt.Sprintf("panel expanded: %s", e.Content)
	case layout.BottomPanelShown:
		return "bottom panel shown"
	case layout.BottomPanelHidden:
		return "bottom panel hidden"
	case layout.BottomPanelHeightChanged:
		return fmt.Sprintf("bottom panel height %.0f", e.Height)
	case layout.BottomPanelTabChanged:
		return fmt.Sprintf("tab: %s", e.Tab)
	case layout.BottomPanelTabPinned:
		return fmt.Sprintf("tab pinned: %s", e.Tab)
	case layout.BottomPanelTabUnpinned:
		return fmt.Sprintf("tab unpinned: %s", e.Tab)
	case layout.PresetApplied:
		return fmt.Sprintf("preset: %s", e.Preset)
	case layout.CoordinationModeChanged:
		return fmt.Sprintf("coordination: %s", e.Mode)
	case layout.BadgeChanged:
		// Badges draw attention on their own; logging them is noise
		return ""
	default:
		return ""
	}
}

func (c *ConsolePanel) ScrollUp() {
	tab := c.activeTab()
	if c.origins[tab] > 0 {
		c.origins[tab]--
	}
}

func (c *ConsolePanel) ScrollDown() {
	tab := c.activeTab()
	if c.origins[tab] < maxOriginFor(c.v) {
		c.origins[tab]++
	}
}

func (c *ConsolePanel) ScrollUpByWheel() {
	tab := c.activeTab()
	c.origins[tab] -= 2
	if c.origins[tab] < 0 {
		c.origins[tab] = 0
	}
}

func (c *ConsolePanel) ScrollDownByWheel() {
	tab := c.activeTab()
	maxOrigin := maxOriginFor(c.v)
	if c.origins[tab] < maxOrigin {
		c.origins[tab] += 2
		if c.origins[tab] > maxOrigin {
			c.origins[tab] = maxOrigin
		}
	}
}

func (c *ConsolePanel) ScrollToTop() {
	c.origins[c.activeTab()] = 0
}

func (c *ConsolePanel) ScrollToBottom() {
	c.origins[c.activeTab()] = maxOriginFor(c.v)
}
