package layout

import (
	"math"

	"github.com/samber/lo"
)

const ratioEpsilon = 1e-9

// Reducer applies actions to layout states. It carries only immutable
// collaborators (geometry config, content registry, preset catalog); Apply
// itself is a pure function of its arguments and never fails; actions that
// cannot be honored are clamped or ignored.
type Reducer struct {
	cfg     Config
	reg     *Registry
	presets *Catalog
}

// NewReducer creates a reducer for the given config and registry.
func NewReducer(cfg Config, reg *Registry) *Reducer {
	cfg = cfg.Normalize()
	return &Reducer{
		cfg:     cfg,
		reg:     reg,
		presets: NewCatalog(cfg),
	}
}

// Config returns the normalized geometry config.
func (r *Reducer) Config() Config {
	return r.cfg
}

// Registry returns the content registry.
func (r *Reducer) Registry() *Registry {
	return r.reg
}

// Presets returns the preset catalog.
func (r *Reducer) Presets() *Catalog {
	return r.presets
}

// Apply returns the state after the action and an event describing the
// change. The event is nil when the action had no effect. The input state
// is never mutated.
func (r *Reducer) Apply(s State, a Action) (State, Event) {
	switch act := a.(type) {
	case ShowRightSidebar:
		return r.showSidebar(s)
	case HideRightSidebar:
		return r.hideSidebar(s)
	case ToggleRightSidebar:
		if s.Sidebar.Visible() {
			return r.hideSidebar(s)
		}
		return r.showSidebar(s)
	case SetRightSidebarWidth:
		return r.setSidebarWidth(s, act.Width)
	case AddSidebarComponent:
		return r.addComponent(s, act.Content)
	case RemoveSidebarComponent:
		return r.removeComponent(s, act.Content)
	case SetSplitRatios:
		return r.setSplitRatios(s, act.Ratios)
	case ExpandSidebarComponent:
		return r.expandComponent(s, act.Content)
	case RestoreSidebarLayout:
		return r.restoreLayout(s)
	case ShowBottomPanel:
		return r.setBottomVisible(s, true)
	case HideBottomPanel:
		return r.setBottomVisible(s, false)
	case ToggleBottomPanel:
		return r.setBottomVisible(s, !s.Bottom.Visible)
	case SetBottomPanelHeight:
		return r.setBottomHeight(s, act.Height)
	case SetBottomPanelTab:
		return r.setBottomTab(s, act.Tab)
	case PinBottomPanelTab:
		return r.pinTab(s, act.Tab)
	case UnpinBottomPanelTab:
		return r.unpinTab(s, act.Tab)
	case ApplyPreset:
		return r.applyPreset(s, act.Preset)
	case SetCoordinationMode:
		return r.setCoordination(s, act.Mode)
	case SetBadge:
		return r.setBadge(s, act.Content, act.Count)
	case ClearBadge:
		return r.setBadge(s, act.Content, 0)
	default:
		return s, nil
	}
}

func (r *Reducer) showSidebar(s State) (State, Event) {
	if s.Sidebar.Visible() {
		return s, nil
	}
	out := s.Clone()
	if s.restore.Visible() {
		out.Sidebar = s.restore
		out.SplitRatios = append([]float64(nil), s.restoreRatios...)
	} else {
		out.Sidebar = SingleSidebar(ContentChat)
		out.SplitRatios = evenRatios(1)
	}
	return out, SidebarShown{Sidebar: out.Sidebar}
}

func (r *Reducer) hideSidebar(s State) (State, Event) {
	if !s.Sidebar.Visible() {
		return s, nil
	}
	out := s.Clone()
	out.restore = s.Sidebar
	out.restoreRatios = append([]float64(nil), s.SplitRatios...)
	out.Sidebar = MinimizedSidebar()
	out.SplitRatios = nil
	return out, SidebarHidden{}
}

func (r *Reducer) setSidebarWidth(s State, w float64) (State, Event) {
	w = r.cfg.clampWidth(w)
	if w == s.SidebarWidth {
		return s, nil
	}
	out := s.Clone()
	out.SidebarWidth = w
	return out, SidebarWidthChanged{Width: w}
}

func (r *Reducer) addComponent(s State, c Content) (State, Event) {
	if !r.reg.Has(c) || r.reg.IsBottom(c) {
		return s, nil
	}
	if s.Sidebar.Contains(c) {
		return s, nil
	}

	var next RightSidebar
	switch s.Sidebar.Mode {
	case SidebarMinimized:
		next = SingleSidebar(c)
	case SidebarSingle:
		if r.cfg.MaxSidebarComponents < 2 {
			return s, nil
		}
		if !r.reg.SupportsSplit(s.Sidebar.Top) || !r.reg.SupportsSplit(c) {
			return s, nil
		}
		next = SplitSidebar(s.Sidebar.Top, c)
	case SidebarSplit:
		if r.cfg.MaxSidebarComponents < 3 {
			return s, nil
		}
		if !r.reg.SupportsSplit(s.Sidebar.Top) || !r.reg.SupportsSplit(s.Sidebar.Bottom) || !r.reg.SupportsSplit(c) {
			return s, nil
		}
		next = TripleSidebar(s.Sidebar.Top, s.Sidebar.Bottom, c)
	default:
		// Full-height modes do not stack further
		return s, nil
	}

	out := s.Clone()
	out.Sidebar = next
	out.SplitRatios = evenRatios(next.SlotCount())
	return out, ComponentAdded{Content: c, Sidebar: next}
}

func (r *Reducer) removeComponent(s State, c Content) (State, Event) {
	if !s.Sidebar.Contains(c) {
		return s, nil
	}

	contents := s.Sidebar.Contents()
	ratios := s.SplitRatios

	remaining := make([]Content, 0, len(contents))
	remainingRatios := make([]float64, 0, len(contents))
	for i, have := range contents {
		if have == c {
			continue
		}
		remaining = append(remaining, have)
		if i < len(ratios) {
			remainingRatios = append(remainingRatios, ratios[i])
		}
	}

	out := s.Clone()
	switch len(remaining) {
	case 0:
		out.Sidebar = MinimizedSidebar()
		out.SplitRatios = nil
		// An emptied sidebar has nothing to restore; toggling it back
		// starts over from the default composition.
		out.restore = RightSidebar{}
		out.restoreRatios = nil
	case 1:
		out.Sidebar = SingleSidebar(remaining[0])
		out.SplitRatios = evenRatios(1)
	case 2:
		out.Sidebar = SplitSidebar(remaining[0], remaining[1])
		out.SplitRatios = r.clampAndNormalize(remainingRatios)
	}
	return out, ComponentRemoved{Content: c, Sidebar: out.Sidebar}
}

func (r *Reducer) setSplitRatios(s State, ratios []float64) (State, Event) {
	if len(ratios) != s.Sidebar.SlotCount() || len(ratios) == 0 {
		return s, nil
	}
	normalized := r.clampAndNormalize(ratios)
	out := s.Clone()
	out.SplitRatios = normalized
	return out, SplitRatiosChanged{Ratios: normalized}
}

func (r *Reducer) expandComponent(s State, c Content) (State, Event) {
	if !r.reg.Has(c) || r.reg.IsBottom(c) {
		return s, nil
	}

	var next RightSidebar
	if c == ContentChat {
		next = FullChatSidebar()
	} else if r.reg.SupportsFullExpand(c) {
		next = FullFloatingSidebar(c)
	} else {
		return s, nil
	}
	if s.Sidebar == next {
		return s, nil
	}

	out := s.Clone()
	if s.Sidebar.Visible() && s.Sidebar.Mode != SidebarFullFloating && s.Sidebar.Mode != SidebarFullChat {
		out.restore = s.Sidebar
		out.restoreRatios = append([]float64(nil), s.SplitRatios...)
	}
	out.Sidebar = next
	out.SplitRatios = evenRatios(1)
	return out, SidebarExpanded{Content: c, Sidebar: next}
}

func (r *Reducer) restoreLayout(s State) (State, Event) {
	if s.Sidebar.Mode != SidebarFullFloating && s.Sidebar.Mode != SidebarFullChat {
		return s, nil
	}
	out := s.Clone()
	if s.restore.Visible() {
		out.Sidebar = s.restore
		out.SplitRatios = append([]float64(nil), s.restoreRatios...)
	} else {
		out.Sidebar = SingleSidebar(s.Sidebar.Top)
		out.SplitRatios = evenRatios(1)
	}
	return out, SidebarShown{Sidebar: out.Sidebar}
}

func (r *Reducer) setBottomVisible(s State, visible bool) (State, Event) {
	if s.Bottom.Visible == visible {
		return s, nil
	}
	out := s.Clone()
	out.Bottom.Visible = visible
	if visible {
		return out, BottomPanelShown{}
	}
	return out, BottomPanelHidden{}
}

func (r *Reducer) setBottomHeight(s State, h float64) (State, Event) {
	h = r.cfg.clampHeight(h)
	if h == s.Bottom.Height {
		return s, nil
	}
	out := s.Clone()
	out.Bottom.Height = h
	return out, BottomPanelHeightChanged{Height: h}
}

func (r *Reducer) setBottomTab(s State, tab Content) (State, Event) {
	if !r.reg.IsBottom(tab) || s.Bottom.ActiveTab == tab {
		return s, nil
	}
	out := s.Clone()
	out.Bottom.ActiveTab = tab
	return out, BottomPanelTabChanged{Tab: tab}
}

func (r *Reducer) pinTab(s State, tab Content) (State, Event) {
	if !r.reg.IsBottom(tab) || s.Bottom.IsPinned(tab) {
		return s, nil
	}
	out := s.Clone()
	out.Bottom.Pinned = append(out.Bottom.Pinned, tab)
	return out, BottomPanelTabPinned{Tab: tab}
}

func (r *Reducer) unpinTab(s State, tab Content) (State, Event) {
	if !s.Bottom.IsPinned(tab) {
		return s, nil
	}
	out := s.Clone()
	out.Bottom.Pinned = lo.Filter(out.Bottom.Pinned, func(p Content, _ int) bool {
		return p != tab
	})
	return out, BottomPanelTabUnpinned{Tab: tab}
}

func (r *Reducer) applyPreset(s State, p Preset) (State, Event) {
	next, ok := r.presets.State(p)
	if !ok {
		return s, nil
	}
	return next, PresetApplied{Preset: p}
}

func (r *Reducer) setCoordination(s State, m CoordinationMode) (State, Event) {
	if s.Coordination == m {
		return s, nil
	}
	out := s.Clone()
	out.Coordination = m
	return out, CoordinationModeChanged{Mode: m}
}

func (r *Reducer) setBadge(s State, c Content, count int) (State, Event) {
	if count < 0 {
		count = 0
	}
	if s.Badge(c) == count {
		return s, nil
	}
	out := s.Clone()
	if out.Badges == nil {
		out.Badges = make(map[Content]int)
	}
	if count == 0 {
		delete(out.Badges, c)
	} else {
		out.Badges[c] = count
	}
	return out, BadgeChanged{Content: c, Count: count}
}

// clampAndNormalize clamps every ratio to the configured bounds and rescales
// the list to sum to 1.0. Clamping and rescaling pull against each other, so
// the two steps are iterated to a fixpoint before the residue is settled on
// the slot furthest from its bound.
func (r *Reducer) clampAndNormalize(ratios []float64) []float64 {
	out := make([]float64, len(ratios))
	copy(out, ratios)

	for iter := 0; iter < 16; iter++ {
		for i := range out {
			out[i] = r.cfg.clampRatio(out[i])
		}
		sum := 0.0
		for _, v := range out {
			sum += v
		}
		if math.Abs(sum-1.0) < ratioEpsilon {
			return out
		}
		if sum <= 0 {
			return evenRatios(len(out))
		}
		for i := range out {
			out[i] /= sum
		}
	}

	// Settle the leftover on the slot with the most slack
	for i := range out {
		out[i] = r.cfg.clampRatio(out[i])
	}
	sum := 0.0
	for _, v := range out {
		sum += v
	}
	residue := 1.0 - sum
	if math.Abs(residue) >= ratioEpsilon {
		best := 0
		slack := -1.0
		for i, v := range out {
			var room float64
			if residue > 0 {
				room = r.cfg.MaxSplitRatio - v
			} else {
				room = v - r.cfg.MinSplitRatio
			}
			if room > slack {
				slack = room
				best = i
			}
		}
		out[best] += residue
	}
	return out
}
