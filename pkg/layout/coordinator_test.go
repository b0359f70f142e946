package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatorDispatch(t *testing.T) {
	c := NewCoordinator(DefaultConfig(), nil, nil)

	var seen []Event
	c.Subscribe(func(ev Event) { seen = append(seen, ev) })

	ev := c.Dispatch(ShowRightSidebar{})
	require.IsType(t, SidebarShown{}, ev)
	assert.True(t, c.State().Sidebar.Visible())
	require.Len(t, seen, 1)
	assert.Equal(t, ev, seen[0])

	// No-op actions do not reach listeners
	assert.Nil(t, c.Dispatch(ShowRightSidebar{}))
	assert.Len(t, seen, 1)
}

func TestCoordinatorHandleDomainEvent(t *testing.T) {
	c := NewCoordinator(DefaultConfig(), nil, nil)

	var seen []Event
	c.Subscribe(func(ev Event) { seen = append(seen, ev) })

	events := c.HandleDomainEvent(DomainEvent{Kind: EventBuildFailed}, TriggerContext{})

	require.Len(t, events, 2)
	assert.Equal(t, events, seen)
	s := c.State()
	assert.True(t, s.Bottom.Visible)
	assert.Equal(t, ContentProblems, s.Bottom.ActiveTab)
}

func TestCoordinatorStateIsACopy(t *testing.T) {
	c := NewCoordinator(DefaultConfig(), nil, nil)
	c.Dispatch(AddSidebarComponent{Content: ContentChat})
	c.Dispatch(AddSidebarComponent{Content: ContentDocumentation})

	s := c.State()
	s.SplitRatios[0] = 0.99
	s.Sidebar = MinimizedSidebar()

	fresh := c.State()
	assert.Equal(t, 0.5, fresh.SplitRatios[0])
	assert.Equal(t, SidebarSplit, fresh.Sidebar.Mode)
}

func TestCoordinatorFrames(t *testing.T) {
	c := NewCoordinator(DefaultConfig(), nil, nil)
	c.Dispatch(AddSidebarComponent{Content: ContentChat})

	frames := c.Frames(Viewport{Width: 1400, Height: 900})
	assert.Equal(t, Rect{X: 1008, Y: 12, Width: 380, Height: 876}, frames.RightSidebar)
}

func TestCoordinatorCustomRules(t *testing.T) {
	rules := []Rule{
		{
			Name:    "always-open-output",
			Event:   EventBuildSucceeded,
			Actions: []Action{ShowBottomPanel{}, SetBottomPanelTab{Tab: ContentOutput}},
			Enabled: true,
		},
	}
	c := NewCoordinator(DefaultConfig(), nil, rules)

	events := c.HandleDomainEvent(DomainEvent{Kind: EventBuildSucceeded}, TriggerContext{})
	assert.Len(t, events, 2)
	assert.Equal(t, ContentOutput, c.State().Bottom.ActiveTab)

	// Events not covered by any rule leave the state untouched
	events = c.HandleDomainEvent(DomainEvent{Kind: EventBuildFailed}, TriggerContext{})
	assert.Empty(t, events)
}
