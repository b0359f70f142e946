package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReducer(t *testing.T) *Reducer {
	t.Helper()
	return NewReducer(DefaultConfig(), DefaultRegistry())
}

func TestAddComponentProgression(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, ev := r.Apply(s, AddSidebarComponent{Content: ContentChat})
	require.IsType(t, ComponentAdded{}, ev)
	assert.Equal(t, SidebarSingle, s.Sidebar.Mode)
	assert.Equal(t, ContentChat, s.Sidebar.Top)
	assert.Equal(t, []float64{1.0}, s.SplitRatios)

	s, ev = r.Apply(s, AddSidebarComponent{Content: ContentDocumentation})
	require.IsType(t, ComponentAdded{}, ev)
	assert.Equal(t, SidebarSplit, s.Sidebar.Mode)
	assert.Equal(t, []Content{ContentChat, ContentDocumentation}, s.Sidebar.Contents())
	assert.Equal(t, []float64{0.5, 0.5}, s.SplitRatios)

	s, ev = r.Apply(s, SetSplitRatios{Ratios: []float64{0.7, 0.3}})
	require.IsType(t, SplitRatiosChanged{}, ev)
	assert.InDelta(t, 0.7, s.SplitRatios[0], 1e-9)
	assert.InDelta(t, 0.3, s.SplitRatios[1], 1e-9)

	s, ev = r.Apply(s, RemoveSidebarComponent{Content: ContentDocumentation})
	require.IsType(t, ComponentRemoved{}, ev)
	assert.Equal(t, SidebarSingle, s.Sidebar.Mode)
	assert.Equal(t, ContentChat, s.Sidebar.Top)
	assert.Equal(t, []float64{1.0}, s.SplitRatios)
}

func TestAddComponentNoOps(t *testing.T) {
	r := newTestReducer(t)

	single := DefaultState(r.Config())
	single, _ = r.Apply(single, AddSidebarComponent{Content: ContentChat})

	tests := []struct {
		name  string
		state State
		add   Content
	}{
		{"duplicate content", single, ContentChat},
		{"bottom panel content", single, ContentTerminal},
		{"unknown content", single, Content("minimap")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ev := r.Apply(tt.state, AddSidebarComponent{Content: tt.add})
			assert.Nil(t, ev)
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestAddComponentTripleCap(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	for _, c := range []Content{ContentChat, ContentDocumentation, ContentInspector} {
		var ev Event
		s, ev = r.Apply(s, AddSidebarComponent{Content: c})
		require.NotNil(t, ev)
	}
	assert.Equal(t, SidebarTriple, s.Sidebar.Mode)
	require.Len(t, s.SplitRatios, 3)
	for _, ratio := range s.SplitRatios {
		assert.InDelta(t, 1.0/3.0, ratio, 1e-9)
	}

	next, ev := r.Apply(s, AddSidebarComponent{Content: ContentPreview})
	assert.Nil(t, ev)
	assert.Equal(t, s, next)
}

func TestAddComponentHonorsMaxComponents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSidebarComponents = 1
	r := NewReducer(cfg, DefaultRegistry())

	s := DefaultState(r.Config())
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentChat})

	next, ev := r.Apply(s, AddSidebarComponent{Content: ContentDocumentation})
	assert.Nil(t, ev)
	assert.Equal(t, SidebarSingle, next.Sidebar.Mode)
}

func TestToggleRestoresComposition(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentChat})
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentDocumentation})
	s, _ = r.Apply(s, SetSplitRatios{Ratios: []float64{0.7, 0.3}})
	want := s.Sidebar

	s, ev := r.Apply(s, ToggleRightSidebar{})
	require.IsType(t, SidebarHidden{}, ev)
	assert.Equal(t, SidebarMinimized, s.Sidebar.Mode)

	s, ev = r.Apply(s, ToggleRightSidebar{})
	require.IsType(t, SidebarShown{}, ev)
	assert.Equal(t, want, s.Sidebar)
	assert.InDelta(t, 0.7, s.SplitRatios[0], 1e-9)
	assert.InDelta(t, 0.3, s.SplitRatios[1], 1e-9)
}

func TestShowSidebarWithoutHistoryDefaultsToChat(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, ev := r.Apply(s, ShowRightSidebar{})
	require.IsType(t, SidebarShown{}, ev)
	assert.Equal(t, SingleSidebar(ContentChat), s.Sidebar)
}

func TestRemoveLastComponentClearsHistory(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentDocumentation})
	s, ev := r.Apply(s, RemoveSidebarComponent{Content: ContentDocumentation})
	require.IsType(t, ComponentRemoved{}, ev)
	assert.Equal(t, SidebarMinimized, s.Sidebar.Mode)

	// Emptying the sidebar forgets the old composition
	s, _ = r.Apply(s, ShowRightSidebar{})
	assert.Equal(t, SingleSidebar(ContentChat), s.Sidebar)
}

func TestSidebarWidthClamping(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	tests := []struct {
		name  string
		width float64
		want  float64
	}{
		{"above max", 10000, 600},
		{"below min", 10, 320},
		{"in range", 420, 420},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ev := r.Apply(s, SetRightSidebarWidth{Width: tt.width})
			require.IsType(t, SidebarWidthChanged{}, ev)
			assert.Equal(t, tt.want, next.SidebarWidth)
		})
	}

	t.Run("unchanged width is a no-op", func(t *testing.T) {
		next, ev := r.Apply(s, SetRightSidebarWidth{Width: s.SidebarWidth})
		assert.Nil(t, ev)
		assert.Equal(t, s, next)
	})
}

func TestSetSplitRatios(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentChat})
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentDocumentation})

	t.Run("out of bounds ratios are clamped", func(t *testing.T) {
		next, ev := r.Apply(s, SetSplitRatios{Ratios: []float64{0.9, 0.1}})
		require.IsType(t, SplitRatiosChanged{}, ev)
		assert.InDelta(t, 0.8, next.SplitRatios[0], 1e-9)
		assert.InDelta(t, 0.2, next.SplitRatios[1], 1e-9)
	})

	t.Run("ratios always sum to one", func(t *testing.T) {
		next, _ := r.Apply(s, SetSplitRatios{Ratios: []float64{3, 1}})
		sum := 0.0
		for _, ratio := range next.SplitRatios {
			sum += ratio
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("slot count mismatch is a no-op", func(t *testing.T) {
		next, ev := r.Apply(s, SetSplitRatios{Ratios: []float64{0.5, 0.3, 0.2}})
		assert.Nil(t, ev)
		assert.Equal(t, s, next)
	})
}

func TestExpandAndRestore(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentChat})
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentDocumentation})
	s, _ = r.Apply(s, SetSplitRatios{Ratios: []float64{0.7, 0.3}})
	before := s.Sidebar

	s, ev := r.Apply(s, ExpandSidebarComponent{Content: ContentChat})
	require.IsType(t, SidebarExpanded{}, ev)
	assert.Equal(t, SidebarFullChat, s.Sidebar.Mode)

	s, ev = r.Apply(s, RestoreSidebarLayout{})
	require.IsType(t, SidebarShown{}, ev)
	assert.Equal(t, before, s.Sidebar)
	assert.InDelta(t, 0.7, s.SplitRatios[0], 1e-9)
}

func TestExpandNonChatContent(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentPreview})

	t.Run("full expand capable content floats", func(t *testing.T) {
		next, ev := r.Apply(s, ExpandSidebarComponent{Content: ContentPreview})
		require.IsType(t, SidebarExpanded{}, ev)
		assert.Equal(t, FullFloatingSidebar(ContentPreview), next.Sidebar)
	})

	t.Run("content without full expand is ignored", func(t *testing.T) {
		next, ev := r.Apply(s, ExpandSidebarComponent{Content: ContentInspector})
		assert.Nil(t, ev)
		assert.Equal(t, s, next)
	})
}

func TestRestoreOutsideFullModes(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	next, ev := r.Apply(s, RestoreSidebarLayout{})
	assert.Nil(t, ev)
	assert.Equal(t, s, next)
}

func TestBottomPanelVisibility(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, ev := r.Apply(s, ShowBottomPanel{})
	require.IsType(t, BottomPanelShown{}, ev)
	assert.True(t, s.Bottom.Visible)

	next, ev := r.Apply(s, ShowBottomPanel{})
	assert.Nil(t, ev)
	assert.Equal(t, s, next)

	s, ev = r.Apply(s, ToggleBottomPanel{})
	require.IsType(t, BottomPanelHidden{}, ev)
	assert.False(t, s.Bottom.Visible)
}

func TestBottomPanelHeightClamping(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, ev := r.Apply(s, SetBottomPanelHeight{Height: 9999})
	require.IsType(t, BottomPanelHeightChanged{}, ev)
	assert.Equal(t, 500.0, s.Bottom.Height)

	s, _ = r.Apply(s, SetBottomPanelHeight{Height: 1})
	assert.Equal(t, 150.0, s.Bottom.Height)
}

func TestBottomPanelTabs(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, ev := r.Apply(s, SetBottomPanelTab{Tab: ContentProblems})
	require.IsType(t, BottomPanelTabChanged{}, ev)
	assert.Equal(t, ContentProblems, s.Bottom.ActiveTab)

	t.Run("sidebar content cannot be a tab", func(t *testing.T) {
		next, ev := r.Apply(s, SetBottomPanelTab{Tab: ContentChat})
		assert.Nil(t, ev)
		assert.Equal(t, s, next)
	})

	t.Run("pin and unpin", func(t *testing.T) {
		next, ev := r.Apply(s, PinBottomPanelTab{Tab: ContentOutput})
		require.IsType(t, BottomPanelTabPinned{}, ev)
		assert.True(t, next.Bottom.IsPinned(ContentOutput))

		again, ev := r.Apply(next, PinBottomPanelTab{Tab: ContentOutput})
		assert.Nil(t, ev)
		assert.Equal(t, next, again)

		next, ev = r.Apply(next, UnpinBottomPanelTab{Tab: ContentOutput})
		require.IsType(t, BottomPanelTabUnpinned{}, ev)
		assert.False(t, next.Bottom.IsPinned(ContentOutput))
	})
}

func TestApplyPresetReplacesState(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentSearch})
	s, _ = r.Apply(s, SetRightSidebarWidth{Width: 500})
	s, _ = r.Apply(s, SetBadge{Content: ContentChat, Count: 4})

	s, ev := r.Apply(s, ApplyPreset{Preset: PresetDebugging})
	require.IsType(t, PresetApplied{}, ev)
	assert.Equal(t, SplitSidebar(ContentInspector, ContentChat), s.Sidebar)
	assert.Equal(t, 400.0, s.SidebarWidth)
	assert.True(t, s.Bottom.Visible)
	assert.Equal(t, ContentDebug, s.Bottom.ActiveTab)
	assert.Empty(t, s.Badges, "presets replace the whole state, never merge")
}

func TestApplyUnknownPreset(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	next, ev := r.Apply(s, ApplyPreset{Preset: Preset("zen")})
	assert.Nil(t, ev)
	assert.Equal(t, s, next)
}

func TestCoordinationMode(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, ev := r.Apply(s, SetCoordinationMode{Mode: CoordinationLinked})
	require.IsType(t, CoordinationModeChanged{}, ev)
	assert.Equal(t, CoordinationLinked, s.Coordination)

	next, ev := r.Apply(s, SetCoordinationMode{Mode: CoordinationLinked})
	assert.Nil(t, ev)
	assert.Equal(t, s, next)
}

func TestBadges(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())

	s, ev := r.Apply(s, SetBadge{Content: ContentNotifications, Count: 3})
	require.IsType(t, BadgeChanged{}, ev)
	assert.Equal(t, 3, s.Badge(ContentNotifications))

	t.Run("negative counts clamp to zero", func(t *testing.T) {
		next, ev := r.Apply(s, SetBadge{Content: ContentNotifications, Count: -5})
		require.IsType(t, BadgeChanged{}, ev)
		assert.Equal(t, 0, next.Badge(ContentNotifications))
		assert.NotContains(t, next.Badges, ContentNotifications)
	})

	t.Run("clearing an unset badge is a no-op", func(t *testing.T) {
		next, ev := r.Apply(s, ClearBadge{Content: ContentSearch})
		assert.Nil(t, ev)
		assert.Equal(t, s, next)
	})
}

func TestApplyNeverMutatesInput(t *testing.T) {
	r := newTestReducer(t)
	s := DefaultState(r.Config())
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentChat})
	s, _ = r.Apply(s, AddSidebarComponent{Content: ContentDocumentation})
	snapshot := s.Clone()

	r.Apply(s, SetSplitRatios{Ratios: []float64{0.7, 0.3}})
	r.Apply(s, RemoveSidebarComponent{Content: ContentChat})
	r.Apply(s, SetBadge{Content: ContentChat, Count: 9})

	assert.Equal(t, snapshot, s)
}
