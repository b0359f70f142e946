package layout

// Content identifies a kind of panel content.
type Content string

// Sidebar content kinds
const (
	ContentChat          Content = "chat"
	ContentNotifications Content = "notifications"
	ContentDocumentation Content = "documentation"
	ContentWalkthrough   Content = "walkthrough"
	ContentPreview       Content = "preview"
	ContentInspector     Content = "inspector"
	ContentSearch        Content = "search"
	ContentHistory       Content = "history"
	ContentBookmarks     Content = "bookmarks"
	ContentOutline       Content = "outline"
)

// Bottom panel content kinds
const (
	ContentTerminal Content = "terminal"
	ContentOutput   Content = "output"
	ContentProblems Content = "problems"
	ContentDebug    Content = "debug"
	ContentGit      Content = "git"
)

// Category tells which panel area a content kind belongs to
type Category int

const (
	CategorySidebar Category = iota
	CategoryBottom
)

// Descriptor holds the static metadata for a content kind
type Descriptor struct {
	Content            Content
	Title              string
	Icon               string  // Icon identifier for the rail
	Category           Category
	ColorGroup         string  // Color category used by the rail
	MinHeight          float64 // Minimum slot height when stacked
	SupportsSplit      bool    // Can share the sidebar with other content
	SupportsFullExpand bool    // Can take over the full sidebar area
	Pairings           []Content // Suggested companions, most natural first
	Priority           int     // Lower is listed first
}

// defaultDescriptors is the built-in content catalog.
func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{Content: ContentChat, Title: "Chat", Icon: "bubble", Category: CategorySidebar, ColorGroup: "accent",
			MinHeight: 120, SupportsSplit: true, SupportsFullExpand: true,
			Pairings: []Content{ContentDocumentation, ContentPreview, ContentInspector}, Priority: 0},
		{Content: ContentNotifications, Title: "Notifications", Icon: "bell", Category: CategorySidebar, ColorGroup: "warning",
			MinHeight: 80, SupportsSplit: true,
			Pairings: []Content{ContentChat}, Priority: 1},
		{Content: ContentDocumentation, Title: "Documentation", Icon: "book", Category: CategorySidebar, ColorGroup: "info",
			MinHeight: 100, SupportsSplit: true, SupportsFullExpand: true,
			Pairings: []Content{ContentChat, ContentWalkthrough}, Priority: 2},
		{Content: ContentWalkthrough, Title: "Walkthrough", Icon: "signpost", Category: CategorySidebar, ColorGroup: "info",
			MinHeight: 100, SupportsSplit: true,
			Pairings: []Content{ContentDocumentation}, Priority: 3},
		{Content: ContentPreview, Title: "Preview", Icon: "eye", Category: CategorySidebar, ColorGroup: "neutral",
			MinHeight: 120, SupportsSplit: true, SupportsFullExpand: true,
			Pairings: []Content{ContentOutline, ContentChat}, Priority: 4},
		{Content: ContentInspector, Title: "Inspector", Icon: "scope", Category: CategorySidebar, ColorGroup: "accent",
			MinHeight: 100, SupportsSplit: true,
			Pairings: []Content{ContentChat, ContentHistory}, Priority: 5},
		{Content: ContentSearch, Title: "Search", Icon: "magnifier", Category: CategorySidebar, ColorGroup: "neutral",
			MinHeight: 80, SupportsSplit: true,
			Pairings: []Content{ContentHistory}, Priority: 6},
		{Content: ContentHistory, Title: "History", Icon: "clock", Category: CategorySidebar, ColorGroup: "neutral",
			MinHeight: 80, SupportsSplit: true,
			Pairings: []Content{ContentSearch, ContentBookmarks}, Priority: 7},
		{Content: ContentBookmarks, Title: "Bookmarks", Icon: "bookmark", Category: CategorySidebar, ColorGroup: "neutral",
			MinHeight: 80, SupportsSplit: true,
			Pairings: []Content{ContentHistory}, Priority: 8},
		{Content: ContentOutline, Title: "Outline", Icon: "list", Category: CategorySidebar, ColorGroup: "neutral",
			MinHeight: 80, SupportsSplit: true,
			Pairings: []Content{ContentPreview}, Priority: 9},

		{Content: ContentTerminal, Title: "Terminal", Icon: "prompt", Category: CategoryBottom, ColorGroup: "neutral",
			MinHeight: 80, Priority: 10},
		{Content: ContentOutput, Title: "Output", Icon: "log", Category: CategoryBottom, ColorGroup: "neutral",
			MinHeight: 80, Priority: 11},
		{Content: ContentProblems, Title: "Problems", Icon: "triangle", Category: CategoryBottom, ColorGroup: "warning",
			MinHeight: 80, Priority: 12},
		{Content: ContentDebug, Title: "Debug", Icon: "bug", Category: CategoryBottom, ColorGroup: "accent",
			MinHeight: 80, Priority: 13},
		{Content: ContentGit, Title: "Git", Icon: "branch", Category: CategoryBottom, ColorGroup: "info",
			MinHeight: 80, Priority: 14},
	}
}
