package layout

// Action is a request to change the layout state. Actions form a closed
// union; the reducer switches exhaustively over the concrete types.
// Invalid actions are clamped or ignored, never rejected.
type Action interface {
	isAction()
}

// ShowRightSidebar restores the last expanded sidebar composition, or a
// single chat panel when nothing was shown before.
type ShowRightSidebar struct{}

// HideRightSidebar minimizes the sidebar, remembering its composition.
type HideRightSidebar struct{}

// ToggleRightSidebar hides an expanded sidebar or restores a minimized one.
type ToggleRightSidebar struct{}

// SetRightSidebarWidth sets the sidebar width, clamped to the config bounds.
type SetRightSidebarWidth struct {
	Width float64
}

// AddSidebarComponent adds content to the sidebar, growing the composition
// from minimized to single to split to triple when all involved content
// kinds support splitting. Already-present or unknown content is a no-op.
type AddSidebarComponent struct {
	Content Content
}

// RemoveSidebarComponent removes content from the sidebar, shrinking the
// composition. Absent content is a no-op.
type RemoveSidebarComponent struct {
	Content Content
}

// SetSplitRatios replaces the slot ratios. Ignored unless the count matches
// the visible slot count; values are clamped then renormalized to sum 1.0.
type SetSplitRatios struct {
	Ratios []float64
}

// ExpandSidebarComponent grows one sidebar content kind to take over the
// full sidebar area: chat reaches fullChat, other full-expand-capable
// content reaches fullFloating.
type ExpandSidebarComponent struct {
	Content Content
}

// RestoreSidebarLayout returns from a full-height mode to the remembered
// stacked composition.
type RestoreSidebarLayout struct{}

// ShowBottomPanel makes the bottom panel visible.
type ShowBottomPanel struct{}

// HideBottomPanel hides the bottom panel.
type HideBottomPanel struct{}

// ToggleBottomPanel flips bottom panel visibility.
type ToggleBottomPanel struct{}

// SetBottomPanelHeight sets the bottom panel height, clamped to bounds.
type SetBottomPanelHeight struct {
	Height float64
}

// SetBottomPanelTab activates a bottom tab without changing visibility.
// Non-bottom content is a no-op.
type SetBottomPanelTab struct {
	Tab Content
}

// PinBottomPanelTab appends a tab to the pinned set, preserving the order
// of existing entries.
type PinBottomPanelTab struct {
	Tab Content
}

// UnpinBottomPanelTab removes a tab from the pinned set.
type UnpinBottomPanelTab struct {
	Tab Content
}

// ApplyPreset replaces the whole layout state with a canned preset.
type ApplyPreset struct {
	Preset Preset
}

// SetCoordinationMode sets the coordination metadata.
type SetCoordinationMode struct {
	Mode CoordinationMode
}

// SetBadge sets the badge count for a content kind. Zero or negative
// counts clear the badge.
type SetBadge struct {
	Content Content
	Count   int
}

// ClearBadge removes the badge for a content kind.
type ClearBadge struct {
	Content Content
}

func (ShowRightSidebar) isAction()       {}
func (HideRightSidebar) isAction()       {}
func (ToggleRightSidebar) isAction()     {}
func (SetRightSidebarWidth) isAction()   {}
func (AddSidebarComponent) isAction()    {}
func (RemoveSidebarComponent) isAction() {}
func (SetSplitRatios) isAction()         {}
func (ExpandSidebarComponent) isAction() {}
func (RestoreSidebarLayout) isAction()   {}
func (ShowBottomPanel) isAction()        {}
func (HideBottomPanel) isAction()        {}
func (ToggleBottomPanel) isAction()      {}
func (SetBottomPanelHeight) isAction()   {}
func (SetBottomPanelTab) isAction()      {}
func (PinBottomPanelTab) isAction()      {}
func (UnpinBottomPanelTab) isAction()    {}
func (ApplyPreset) isAction()            {}
func (SetCoordinationMode) isAction()    {}
func (SetBadge) isAction()               {}
func (ClearBadge) isAction()             {}
