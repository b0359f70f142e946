package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarConstructors(t *testing.T) {
	tests := []struct {
		name     string
		sidebar  RightSidebar
		contents []Content
		visible  bool
	}{
		{"minimized", MinimizedSidebar(), nil, false},
		{"single", SingleSidebar(ContentChat), []Content{ContentChat}, true},
		{"split", SplitSidebar(ContentChat, ContentPreview), []Content{ContentChat, ContentPreview}, true},
		{"triple", TripleSidebar(ContentChat, ContentDocumentation, ContentInspector),
			[]Content{ContentChat, ContentDocumentation, ContentInspector}, true},
		{"full floating", FullFloatingSidebar(ContentPreview), []Content{ContentPreview}, true},
		{"full chat", FullChatSidebar(), []Content{ContentChat}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contents, tt.sidebar.Contents())
			assert.Equal(t, len(tt.contents), tt.sidebar.SlotCount())
			assert.Equal(t, tt.visible, tt.sidebar.Visible())
			for _, c := range tt.contents {
				assert.True(t, tt.sidebar.Contains(c))
			}
			assert.False(t, tt.sidebar.Contains(ContentOutline))
		})
	}
}

func TestDefaultState(t *testing.T) {
	cfg := DefaultConfig()
	s := DefaultState(cfg)

	assert.Equal(t, SidebarMinimized, s.Sidebar.Mode)
	assert.Equal(t, 380.0, s.SidebarWidth)
	assert.False(t, s.Bottom.Visible)
	assert.Equal(t, 220.0, s.Bottom.Height)
	assert.Equal(t, ContentTerminal, s.Bottom.ActiveTab)
	assert.Equal(t, CoordinationIndependent, s.Coordination)
}

func TestCloneIsDeep(t *testing.T) {
	s := DefaultState(DefaultConfig())
	s.Sidebar = SplitSidebar(ContentChat, ContentPreview)
	s.SplitRatios = []float64{0.6, 0.4}
	s.Bottom.Pinned = []Content{ContentOutput}
	s.Badges = map[Content]int{ContentChat: 2}

	c := s.Clone()
	c.SplitRatios[0] = 0.9
	c.Bottom.Pinned[0] = ContentGit
	c.Badges[ContentChat] = 7

	assert.Equal(t, 0.6, s.SplitRatios[0])
	assert.Equal(t, ContentOutput, s.Bottom.Pinned[0])
	assert.Equal(t, 2, s.Badges[ContentChat])
}

func TestVisiblePanels(t *testing.T) {
	s := DefaultState(DefaultConfig())
	s.Sidebar = SplitSidebar(ContentChat, ContentDocumentation)
	s.Bottom.Visible = true
	s.Bottom.ActiveTab = ContentProblems

	assert.Equal(t, []Content{ContentChat, ContentDocumentation, ContentProblems}, s.VisiblePanels())
	assert.True(t, s.IsVisible(ContentProblems))
	assert.False(t, s.IsVisible(ContentTerminal), "inactive bottom tabs are not visible")

	s.Bottom.Visible = false
	assert.False(t, s.IsVisible(ContentProblems))
}

func TestEvenRatios(t *testing.T) {
	assert.Nil(t, evenRatios(0))

	for n := 1; n <= 3; n++ {
		ratios := evenRatios(n)
		require.Len(t, ratios, n)
		sum := 0.0
		for _, r := range ratios {
			sum += r
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestNormalizeRatios(t *testing.T) {
	tests := []struct {
		name  string
		in    []float64
		want  []float64
		delta float64
	}{
		{"already normalized", []float64{0.5, 0.5}, []float64{0.5, 0.5}, 1e-9},
		{"scaled down", []float64{2, 2}, []float64{0.5, 0.5}, 1e-9},
		{"degenerate falls back even", []float64{0, 0}, []float64{0.5, 0.5}, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeRatios(tt.in)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], tt.delta)
			}
		})
	}
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "minimized", SidebarMinimized.String())
	assert.Equal(t, "fullChat", SidebarFullChat.String())
	assert.Equal(t, "unknown", SidebarMode(99).String())
	assert.Equal(t, "linked", CoordinationLinked.String())
	assert.Equal(t, "unknown", CoordinationMode(99).String())
}
