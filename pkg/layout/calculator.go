package layout

// Viewport is the available drawing area.
type Viewport struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle. The zero Rect is the empty frame,
// meaning "do not render".
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rectangle reserves no space.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether two non-empty rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// ComponentFrame is the frame of one sidebar slot.
type ComponentFrame struct {
	Content Content
	Frame   Rect
}

// Frames is the calculator output consumed by the rendering layer.
type Frames struct {
	RightSidebar Rect
	BottomPanel  Rect
	Components   []ComponentFrame
}

// Calculate maps a layout state and viewport to panel frames. It is a pure
// function: no internal state, safe to call on every layout pass. Frames
// that would have non-positive width or height are reported empty.
func Calculate(s State, vp Viewport, cfg Config) Frames {
	cfg = cfg.Normalize()
	var out Frames

	gap := cfg.PanelGap
	sidebarVisible := s.Sidebar.Visible()
	bottomVisible := s.Bottom.Visible

	if sidebarVisible {
		width := s.SidebarWidth
		if width > cfg.MaxRightSidebarWidth {
			width = cfg.MaxRightSidebarWidth
		}

		// Full-height modes span the viewport beside the bottom panel;
		// stacked modes stop above it.
		fullHeight := s.Sidebar.Mode == SidebarFullFloating || s.Sidebar.Mode == SidebarFullChat
		bottomReservation := gap
		if bottomVisible && !fullHeight {
			bottomReservation = s.Bottom.Height + 2*gap
		}

		frame := Rect{
			X:      vp.Width - width - gap,
			Y:      gap,
			Width:  width,
			Height: vp.Height - gap - bottomReservation,
		}
		out.RightSidebar = sanitize(frame)
	}

	if bottomVisible {
		height := s.Bottom.Height
		if height > cfg.MaxBottomPanelHeight {
			height = cfg.MaxBottomPanelHeight
		}

		rightReservation := gap
		if sidebarVisible {
			rightReservation = s.SidebarWidth + gap
		}

		frame := Rect{
			X:      gap,
			Y:      vp.Height - height - gap,
			Width:  vp.Width - gap - rightReservation,
			Height: height,
		}
		out.BottomPanel = sanitize(frame)
	}

	out.Components = componentFrames(s, out.RightSidebar, cfg)
	return out
}

// componentFrames stacks the visible slots top to bottom inside the sidebar
// frame, separated by the divider gap, each taking its ratio of the
// remaining height.
func componentFrames(s State, sidebar Rect, cfg Config) []ComponentFrame {
	contents := s.Sidebar.Contents()
	if len(contents) == 0 || sidebar.Empty() {
		return nil
	}

	ratios := s.SplitRatios
	if len(ratios) != len(contents) {
		ratios = evenRatios(len(contents))
	}

	n := float64(len(contents))
	usable := sidebar.Height - (n-1)*cfg.DividerHeight

	out := make([]ComponentFrame, 0, len(contents))
	y := sidebar.Y
	for i, c := range contents {
		h := usable * ratios[i]
		frame := sanitize(Rect{
			X:      sidebar.X,
			Y:      y,
			Width:  sidebar.Width,
			Height: h,
		})
		out = append(out, ComponentFrame{Content: c, Frame: frame})
		y += h + cfg.DividerHeight
	}
	return out
}

// sanitize collapses degenerate rectangles to the empty frame.
func sanitize(r Rect) Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return Rect{}
	}
	return r
}
