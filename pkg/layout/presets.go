package layout

// Preset identifies a canned layout.
type Preset string

const (
	PresetCoding     Preset = "coding"
	PresetDebugging  Preset = "debugging"
	PresetTesting    Preset = "testing"
	PresetReviewing  Preset = "reviewing"
	PresetLearning   Preset = "learning"
	PresetFocused    Preset = "focused"
	PresetPresenting Preset = "presenting"
)

// Catalog maps preset identifiers to complete layout states. Applying a
// preset is a total replacement of the state, never a merge.
type Catalog struct {
	cfg    Config
	states map[Preset]State
}

// NewCatalog builds the preset catalog for a geometry config. Preset widths
// and heights are clamped to the config bounds so a host with tighter
// bounds still gets valid states.
func NewCatalog(cfg Config) *Catalog {
	cfg = cfg.Normalize()
	c := &Catalog{cfg: cfg, states: make(map[Preset]State)}

	base := func() State { return DefaultState(cfg) }

	coding := base()
	coding.Bottom.Visible = true
	coding.Bottom.Height = cfg.clampHeight(200)
	coding.Bottom.ActiveTab = ContentTerminal
	c.states[PresetCoding] = coding

	debugging := base()
	debugging.Sidebar = SplitSidebar(ContentInspector, ContentChat)
	debugging.SplitRatios = evenRatios(2)
	debugging.SidebarWidth = cfg.clampWidth(400)
	debugging.Bottom.Visible = true
	debugging.Bottom.Height = cfg.clampHeight(250)
	debugging.Bottom.ActiveTab = ContentDebug
	c.states[PresetDebugging] = debugging

	testing := base()
	testing.Bottom.Visible = true
	testing.Bottom.Height = cfg.clampHeight(250)
	testing.Bottom.ActiveTab = ContentOutput
	testing.Bottom.Pinned = []Content{ContentOutput, ContentProblems}
	c.states[PresetTesting] = testing

	reviewing := base()
	reviewing.Sidebar = SplitSidebar(ContentChat, ContentPreview)
	reviewing.SplitRatios = evenRatios(2)
	reviewing.SidebarWidth = cfg.clampWidth(420)
	reviewing.Bottom.Visible = true
	reviewing.Bottom.Height = cfg.clampHeight(200)
	reviewing.Bottom.ActiveTab = ContentGit
	c.states[PresetReviewing] = reviewing

	learning := base()
	learning.Sidebar = SplitSidebar(ContentDocumentation, ContentWalkthrough)
	learning.SplitRatios = evenRatios(2)
	learning.SidebarWidth = cfg.clampWidth(400)
	c.states[PresetLearning] = learning

	// Focused hides everything; it is the default launch state
	c.states[PresetFocused] = base()

	presenting := base()
	presenting.Sidebar = SingleSidebar(ContentPreview)
	presenting.SplitRatios = evenRatios(1)
	presenting.SidebarWidth = cfg.clampWidth(480)
	c.states[PresetPresenting] = presenting

	return c
}

// State returns a fresh copy of the preset's layout state.
func (c *Catalog) State(p Preset) (State, bool) {
	s, ok := c.states[p]
	if !ok {
		return State{}, false
	}
	return s.Clone(), true
}

// Presets returns the known preset identifiers in a stable order.
func (c *Catalog) Presets() []Preset {
	return []Preset{
		PresetCoding,
		PresetDebugging,
		PresetTesting,
		PresetReviewing,
		PresetLearning,
		PresetFocused,
		PresetPresenting,
	}
}

// Has reports whether the catalog knows a preset.
func (c *Catalog) Has(p Preset) bool {
	_, ok := c.states[p]
	return ok
}
