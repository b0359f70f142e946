package layout

// Config holds the geometry constants for the coordinator. All values are
// overridable; the zero value of any field falls back to its default when
// loaded through Normalize.
type Config struct {
	PanelGap                 float64
	CornerRadius             float64
	MinRightSidebarWidth     float64
	MaxRightSidebarWidth     float64
	DefaultRightSidebarWidth float64
	MinBottomPanelHeight     float64
	MaxBottomPanelHeight     float64
	DefaultBottomPanelHeight float64
	MinSplitRatio            float64
	MaxSplitRatio            float64
	MaxSidebarComponents     int
	DividerHeight            float64
}

// DefaultConfig returns the reference geometry constants.
func DefaultConfig() Config {
	return Config{
		PanelGap:                 12,
		CornerRadius:             16,
		MinRightSidebarWidth:     320,
		MaxRightSidebarWidth:     600,
		DefaultRightSidebarWidth: 380,
		MinBottomPanelHeight:     150,
		MaxBottomPanelHeight:     500,
		DefaultBottomPanelHeight: 220,
		MinSplitRatio:            0.2,
		MaxSplitRatio:            0.8,
		MaxSidebarComponents:     3,
		DividerHeight:            6,
	}
}

// Normalize fills unset fields from the defaults and repairs inverted
// bounds. Overrides may set only the fields they care about.
func (c Config) Normalize() Config {
	def := DefaultConfig()

	if c.PanelGap <= 0 {
		c.PanelGap = def.PanelGap
	}
	if c.CornerRadius <= 0 {
		c.CornerRadius = def.CornerRadius
	}
	if c.MinRightSidebarWidth <= 0 {
		c.MinRightSidebarWidth = def.MinRightSidebarWidth
	}
	if c.MaxRightSidebarWidth <= 0 {
		c.MaxRightSidebarWidth = def.MaxRightSidebarWidth
	}
	if c.MaxRightSidebarWidth < c.MinRightSidebarWidth {
		c.MaxRightSidebarWidth = c.MinRightSidebarWidth
	}
	if c.DefaultRightSidebarWidth <= 0 {
		c.DefaultRightSidebarWidth = def.DefaultRightSidebarWidth
	}
	if c.MinBottomPanelHeight <= 0 {
		c.MinBottomPanelHeight = def.MinBottomPanelHeight
	}
	if c.MaxBottomPanelHeight <= 0 {
		c.MaxBottomPanelHeight = def.MaxBottomPanelHeight
	}
	if c.MaxBottomPanelHeight < c.MinBottomPanelHeight {
		c.MaxBottomPanelHeight = c.MinBottomPanelHeight
	}
	if c.DefaultBottomPanelHeight <= 0 {
		c.DefaultBottomPanelHeight = def.DefaultBottomPanelHeight
	}
	if c.MinSplitRatio <= 0 {
		c.MinSplitRatio = def.MinSplitRatio
	}
	if c.MaxSplitRatio <= 0 {
		c.MaxSplitRatio = def.MaxSplitRatio
	}
	if c.MaxSplitRatio < c.MinSplitRatio {
		c.MaxSplitRatio = c.MinSplitRatio
	}
	if c.MaxSidebarComponents <= 0 {
		c.MaxSidebarComponents = def.MaxSidebarComponents
	}
	if c.MaxSidebarComponents > 3 {
		c.MaxSidebarComponents = 3
	}
	if c.DividerHeight <= 0 {
		c.DividerHeight = def.DividerHeight
	}

	return c
}

// clampWidth clamps a sidebar width to the configured bounds
func (c Config) clampWidth(w float64) float64 {
	if w < c.MinRightSidebarWidth {
		return c.MinRightSidebarWidth
	}
	if w > c.MaxRightSidebarWidth {
		return c.MaxRightSidebarWidth
	}
	return w
}

// clampHeight clamps a bottom panel height to the configured bounds
func (c Config) clampHeight(h float64) float64 {
	if h < c.MinBottomPanelHeight {
		return c.MinBottomPanelHeight
	}
	if h > c.MaxBottomPanelHeight {
		return c.MaxBottomPanelHeight
	}
	return h
}

// clampRatio clamps a single split ratio to the configured bounds
func (c Config) clampRatio(r float64) float64 {
	if r < c.MinSplitRatio {
		return c.MinSplitRatio
	}
	if r > c.MaxSplitRatio {
		return c.MaxSplitRatio
	}
	return r
}
