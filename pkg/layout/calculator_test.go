package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSidebarOnly(t *testing.T) {
	cfg := DefaultConfig()
	s := DefaultState(cfg)
	s.Sidebar = SingleSidebar(ContentChat)
	s.SplitRatios = evenRatios(1)

	frames := Calculate(s, Viewport{Width: 1400, Height: 900}, cfg)

	assert.Equal(t, Rect{X: 1008, Y: 12, Width: 380, Height: 876}, frames.RightSidebar)
	assert.True(t, frames.BottomPanel.Empty())
	require.Len(t, frames.Components, 1)
	assert.Equal(t, ContentChat, frames.Components[0].Content)
	assert.Equal(t, frames.RightSidebar, frames.Components[0].Frame)
}

func TestCalculateSidebarAndBottomPanel(t *testing.T) {
	cfg := DefaultConfig()
	s := DefaultState(cfg)
	s.Sidebar = SingleSidebar(ContentChat)
	s.SplitRatios = evenRatios(1)
	s.Bottom.Visible = true

	frames := Calculate(s, Viewport{Width: 1400, Height: 900}, cfg)

	// The sidebar stops above the bottom panel, the bottom panel stops
	// left of the sidebar.
	assert.Equal(t, Rect{X: 1008, Y: 12, Width: 380, Height: 644}, frames.RightSidebar)
	assert.Equal(t, Rect{X: 12, Y: 668, Width: 996, Height: 220}, frames.BottomPanel)
	assert.False(t, frames.RightSidebar.Intersects(frames.BottomPanel))
}

func TestCalculateFullHeightModes(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 1400, Height: 900}

	for _, sidebar := range []RightSidebar{FullChatSidebar(), FullFloatingSidebar(ContentPreview)} {
		s := DefaultState(cfg)
		s.Sidebar = sidebar
		s.SplitRatios = evenRatios(1)
		s.Bottom.Visible = true

		frames := Calculate(s, vp, cfg)

		assert.Equal(t, 876.0, frames.RightSidebar.Height, "mode %s spans the full height", sidebar.Mode)
		assert.False(t, frames.RightSidebar.Intersects(frames.BottomPanel))
	}
}

func TestCalculateSplitComponents(t *testing.T) {
	cfg := DefaultConfig()
	s := DefaultState(cfg)
	s.Sidebar = SplitSidebar(ContentChat, ContentDocumentation)
	s.SplitRatios = []float64{0.7, 0.3}

	frames := Calculate(s, Viewport{Width: 1400, Height: 900}, cfg)
	require.Len(t, frames.Components, 2)

	top := frames.Components[0]
	bottom := frames.Components[1]
	usable := frames.RightSidebar.Height - cfg.DividerHeight

	assert.InDelta(t, usable*0.7, top.Frame.Height, 1e-9)
	assert.InDelta(t, usable*0.3, bottom.Frame.Height, 1e-9)
	assert.InDelta(t, top.Frame.Y+top.Frame.Height+cfg.DividerHeight, bottom.Frame.Y, 1e-9)
	assert.False(t, top.Frame.Intersects(bottom.Frame))

	// The slots tile the sidebar exactly
	assert.InDelta(t, frames.RightSidebar.Y+frames.RightSidebar.Height,
		bottom.Frame.Y+bottom.Frame.Height, 1e-9)
}

func TestCalculateDegenerateViewport(t *testing.T) {
	cfg := DefaultConfig()
	s := DefaultState(cfg)
	s.Sidebar = SplitSidebar(ContentChat, ContentDocumentation)
	s.SplitRatios = evenRatios(2)
	s.Bottom.Visible = true

	tests := []struct {
		name string
		vp   Viewport
	}{
		{"zero viewport", Viewport{}},
		{"tiny viewport", Viewport{Width: 20, Height: 20}},
		{"negative viewport", Viewport{Width: -100, Height: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames := Calculate(s, tt.vp, cfg)
			assert.True(t, frames.RightSidebar.Empty())
			assert.True(t, frames.BottomPanel.Empty())
			for _, c := range frames.Components {
				assert.True(t, c.Frame.Empty())
			}
		})
	}
}

func TestCalculateHiddenPanels(t *testing.T) {
	cfg := DefaultConfig()
	s := DefaultState(cfg)

	frames := Calculate(s, Viewport{Width: 1400, Height: 900}, cfg)

	assert.True(t, frames.RightSidebar.Empty())
	assert.True(t, frames.BottomPanel.Empty())
	assert.Empty(t, frames.Components)
}

func TestCalculateIsPure(t *testing.T) {
	cfg := DefaultConfig()
	s := DefaultState(cfg)
	s.Sidebar = SplitSidebar(ContentChat, ContentPreview)
	s.SplitRatios = []float64{0.6, 0.4}
	s.Bottom.Visible = true
	vp := Viewport{Width: 1280, Height: 800}

	first := Calculate(s, vp, cfg)
	second := Calculate(s, vp, cfg)
	assert.Equal(t, first, second)
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"empty never intersects", Rect{}, Rect{0, 0, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}
