package layout

// SidebarMode enumerates the right sidebar compositions.
type SidebarMode int

const (
	SidebarMinimized SidebarMode = iota
	SidebarSingle
	SidebarSplit
	SidebarTriple
	SidebarFullFloating
	SidebarFullChat
)

// String returns the mode name for display and logging
func (m SidebarMode) String() string {
	switch m {
	case SidebarMinimized:
		return "minimized"
	case SidebarSingle:
		return "single"
	case SidebarSplit:
		return "split"
	case SidebarTriple:
		return "triple"
	case SidebarFullFloating:
		return "fullFloating"
	case SidebarFullChat:
		return "fullChat"
	default:
		return "unknown"
	}
}

// RightSidebar is the closed tagged union describing the sidebar
// composition. Slots that the mode does not use are empty. Constructed
// through the helpers below so that invalid shapes (a split with one
// populated slot, duplicated content) cannot be represented by reducer
// output.
type RightSidebar struct {
	Mode   SidebarMode
	Top    Content
	Middle Content
	Bottom Content
}

// MinimizedSidebar returns the collapsed sidebar.
func MinimizedSidebar() RightSidebar {
	return RightSidebar{Mode: SidebarMinimized}
}

// SingleSidebar returns a sidebar with one slot.
func SingleSidebar(c Content) RightSidebar {
	return RightSidebar{Mode: SidebarSingle, Top: c}
}

// SplitSidebar returns a sidebar with two stacked slots.
func SplitSidebar(top, bottom Content) RightSidebar {
	return RightSidebar{Mode: SidebarSplit, Top: top, Bottom: bottom}
}

// TripleSidebar returns a sidebar with three stacked slots.
func TripleSidebar(top, middle, bottom Content) RightSidebar {
	return RightSidebar{Mode: SidebarTriple, Top: top, Middle: middle, Bottom: bottom}
}

// FullFloatingSidebar returns a sidebar fully taken over by one content kind.
func FullFloatingSidebar(c Content) RightSidebar {
	return RightSidebar{Mode: SidebarFullFloating, Top: c}
}

// FullChatSidebar returns the chat-takeover sidebar. Only chat reaches this
// mode and it always fills the full height.
func FullChatSidebar() RightSidebar {
	return RightSidebar{Mode: SidebarFullChat, Top: ContentChat}
}

// Contents returns the visible slot contents top to bottom.
func (s RightSidebar) Contents() []Content {
	switch s.Mode {
	case SidebarSingle, SidebarFullFloating, SidebarFullChat:
		return []Content{s.Top}
	case SidebarSplit:
		return []Content{s.Top, s.Bottom}
	case SidebarTriple:
		return []Content{s.Top, s.Middle, s.Bottom}
	default:
		return nil
	}
}

// SlotCount returns the number of visible slots.
func (s RightSidebar) SlotCount() int {
	return len(s.Contents())
}

// Contains reports whether the sidebar shows the given content.
func (s RightSidebar) Contains(c Content) bool {
	for _, have := range s.Contents() {
		if have == c {
			return true
		}
	}
	return false
}

// Visible reports whether the sidebar occupies screen space.
func (s RightSidebar) Visible() bool {
	return s.Mode != SidebarMinimized
}

// CoordinationMode describes how panels react to each other. The reducer
// stores it as metadata; consuming layers interpret it.
type CoordinationMode int

const (
	CoordinationIndependent CoordinationMode = iota
	CoordinationLinked
	CoordinationSynchronized
	CoordinationExclusive
)

// String returns the coordination mode name
func (m CoordinationMode) String() string {
	switch m {
	case CoordinationIndependent:
		return "independent"
	case CoordinationLinked:
		return "linked"
	case CoordinationSynchronized:
		return "synchronized"
	case CoordinationExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// BottomPanel holds the bottom panel state.
type BottomPanel struct {
	Visible   bool
	Height    float64
	ActiveTab Content
	Pinned    []Content // Ordered set of pinned tabs
}

// IsPinned reports whether a tab is pinned.
func (b BottomPanel) IsPinned(tab Content) bool {
	for _, p := range b.Pinned {
		if p == tab {
			return true
		}
	}
	return false
}

// State is the aggregate layout state. It is treated as an immutable value:
// the reducer returns fresh copies and never mutates shared slices or maps
// in place.
type State struct {
	Sidebar      RightSidebar
	SidebarWidth float64
	SplitRatios  []float64 // One entry per visible slot, summing to 1.0
	Bottom       BottomPanel
	Coordination CoordinationMode
	Badges       map[Content]int

	// Last expanded composition, restored by toggle/show after minimizing.
	// Kept inside the state so the reducer stays a pure state function.
	restore       RightSidebar
	restoreRatios []float64
}

// DefaultState returns the launch state: sidebar minimized, bottom panel
// hidden at its default height showing the terminal tab.
func DefaultState(cfg Config) State {
	cfg = cfg.Normalize()
	return State{
		Sidebar:      MinimizedSidebar(),
		SidebarWidth: cfg.clampWidth(cfg.DefaultRightSidebarWidth),
		Bottom: BottomPanel{
			Visible:   false,
			Height:    cfg.clampHeight(cfg.DefaultBottomPanelHeight),
			ActiveTab: ContentTerminal,
		},
		Coordination: CoordinationIndependent,
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	if s.SplitRatios != nil {
		out.SplitRatios = append([]float64(nil), s.SplitRatios...)
	}
	if s.Bottom.Pinned != nil {
		out.Bottom.Pinned = append([]Content(nil), s.Bottom.Pinned...)
	}
	if s.Badges != nil {
		out.Badges = make(map[Content]int, len(s.Badges))
		for k, v := range s.Badges {
			out.Badges[k] = v
		}
	}
	if s.restoreRatios != nil {
		out.restoreRatios = append([]float64(nil), s.restoreRatios...)
	}
	return out
}

// Badge returns the badge count for a content kind, zero when unset.
func (s State) Badge(c Content) int {
	return s.Badges[c]
}

// VisiblePanels lists the content kinds currently on screen: sidebar slots
// plus the active bottom tab when the bottom panel is visible.
func (s State) VisiblePanels() []Content {
	out := append([]Content(nil), s.Sidebar.Contents()...)
	if s.Bottom.Visible {
		out = append(out, s.Bottom.ActiveTab)
	}
	return out
}

// IsVisible reports whether a content kind is currently on screen.
func (s State) IsVisible(c Content) bool {
	for _, have := range s.VisiblePanels() {
		if have == c {
			return true
		}
	}
	return false
}

// evenRatios returns n equal ratios summing to 1.0
func evenRatios(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0 / float64(n)
	}
	return out
}

// normalizeRatios scales ratios so they sum to 1.0. A degenerate sum
// falls back to an even distribution.
func normalizeRatios(ratios []float64) []float64 {
	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	if sum <= 0 {
		return evenRatios(len(ratios))
	}
	out := make([]float64, len(ratios))
	for i, r := range ratios {
		out[i] = r / sum
	}
	return out
}
