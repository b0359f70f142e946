package layout

// Event describes a state change produced by the reducer. Apply returns a
// nil Event when an action was ignored. Events are the only side channel of
// the reducer: observers receive them, the reducer itself stays pure.
type Event interface {
	isEvent()
}

// SidebarShown is emitted when the sidebar leaves the minimized mode.
type SidebarShown struct {
	Sidebar RightSidebar
}

// SidebarHidden is emitted when the sidebar is minimized.
type SidebarHidden struct{}

// SidebarWidthChanged is emitted with the clamped width.
type SidebarWidthChanged struct {
	Width float64
}

// ComponentAdded is emitted when content joins the sidebar.
type ComponentAdded struct {
	Content Content
	Sidebar RightSidebar
}

// ComponentRemoved is emitted when content leaves the sidebar.
type ComponentRemoved struct {
	Content Content
	Sidebar RightSidebar
}

// SplitRatiosChanged is emitted with the normalized ratios.
type SplitRatiosChanged struct {
	Ratios []float64
}

// SidebarExpanded is emitted when content takes over the full sidebar.
type SidebarExpanded struct {
	Content Content
	Sidebar RightSidebar
}

// BottomPanelShown is emitted when the bottom panel becomes visible.
type BottomPanelShown struct{}

// BottomPanelHidden is emitted when the bottom panel is hidden.
type BottomPanelHidden struct{}

// BottomPanelHeightChanged is emitted with the clamped height.
type BottomPanelHeightChanged struct {
	Height float64
}

// BottomPanelTabChanged is emitted when the active tab changes.
type BottomPanelTabChanged struct {
	Tab Content
}

// BottomPanelTabPinned is emitted when a tab is pinned.
type BottomPanelTabPinned struct {
	Tab Content
}

// BottomPanelTabUnpinned is emitted when a tab is unpinned.
type BottomPanelTabUnpinned struct {
	Tab Content
}

// PresetApplied is emitted when a preset replaces the state.
type PresetApplied struct {
	Preset Preset
}

// CoordinationModeChanged is emitted when the coordination metadata changes.
type CoordinationModeChanged struct {
	Mode CoordinationMode
}

// BadgeChanged is emitted when a badge count changes. Count zero means the
// badge was cleared.
type BadgeChanged struct {
	Content Content
	Count   int
}

func (SidebarShown) isEvent()             {}
func (SidebarHidden) isEvent()            {}
func (SidebarWidthChanged) isEvent()      {}
func (ComponentAdded) isEvent()           {}
func (ComponentRemoved) isEvent()         {}
func (SplitRatiosChanged) isEvent()       {}
func (SidebarExpanded) isEvent()          {}
func (BottomPanelShown) isEvent()         {}
func (BottomPanelHidden) isEvent()        {}
func (BottomPanelHeightChanged) isEvent() {}
func (BottomPanelTabChanged) isEvent()    {}
func (BottomPanelTabPinned) isEvent()     {}
func (BottomPanelTabUnpinned) isEvent()   {}
func (PresetApplied) isEvent()            {}
func (CoordinationModeChanged) isEvent()  {}
func (BadgeChanged) isEvent()             {}
