package app

import "github.com/flowkit-dev/flowkit/pkg/layout"

// Fixed view identifiers. Sidebar slot views are derived from the content
// kind so they come and go with the layout state.
const (
	ViewRail      = "rail"
	ViewNavigator = "navigator"
	ViewEditor    = "editor"
	ViewBottom    = "bottom"
	ViewStatusbar = "statusbar"
)

// SlotViewID returns the view ID for a sidebar slot showing the given content.
func SlotViewID(c layout.Content) string {
	return "slot_" + string(c)
}
