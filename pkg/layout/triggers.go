package layout

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// DomainEventKind enumerates the workspace events the trigger engine reacts
// to. They originate outside the core: build/test runners, the debugger,
// git, or the host UI.
type DomainEventKind string

const (
	EventBuildFailed        DomainEventKind = "buildFailed"
	EventBuildSucceeded     DomainEventKind = "buildSucceeded"
	EventTestsFailed        DomainEventKind = "testsFailed"
	EventTestsPassed        DomainEventKind = "testsPassed"
	EventBreakpointHit      DomainEventKind = "breakpointHit"
	EventGitConflict        DomainEventKind = "gitConflict"
	EventHelpRequested      DomainEventKind = "helpRequested"
	EventErrorDetected      DomainEventKind = "errorDetected"
	EventInputPanelExtended DomainEventKind = "inputPanelExtended"
)

// DomainEvent is one occurrence of a workspace event.
type DomainEvent struct {
	Kind DomainEventKind
	File string // Optional file associated with the event
}

// TriggerContext carries the external facts conditions may consult. The
// core does not track files or build status itself; the caller supplies
// them per evaluation.
type TriggerContext struct {
	FileName     string
	ErrorCount   int
	WarningCount int
	Preferences  map[string]bool
}

// Condition is a pure predicate over the layout state and trigger context.
type Condition interface {
	Evaluate(s State, ctx TriggerContext) bool
}

// FileType matches when the context file has the given extension.
type FileType struct {
	Ext string
}

func (c FileType) Evaluate(_ State, ctx TriggerContext) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(ctx.FileName)), ".")
	return ext != "" && ext == strings.TrimPrefix(strings.ToLower(c.Ext), ".")
}

// HasErrors matches when the context reports at least one error.
type HasErrors struct{}

func (HasErrors) Evaluate(_ State, ctx TriggerContext) bool {
	return ctx.ErrorCount > 0
}

// HasWarnings matches when the context reports at least one warning.
type HasWarnings struct{}

func (HasWarnings) Evaluate(_ State, ctx TriggerContext) bool {
	return ctx.WarningCount > 0
}

// PanelNotVisible matches when the given content is not on screen.
type PanelNotVisible struct {
	Content Content
}

func (c PanelNotVisible) Evaluate(s State, _ TriggerContext) bool {
	return !s.IsVisible(c.Content)
}

// UserPreference matches when the named preference flag is enabled.
type UserPreference struct {
	Key string
}

func (c UserPreference) Evaluate(_ State, ctx TriggerContext) bool {
	return ctx.Preferences[c.Key]
}

// InFullChat matches while the sidebar is in the chat-takeover mode.
type InFullChat struct{}

func (InFullChat) Evaluate(s State, _ TriggerContext) bool {
	return s.Sidebar.Mode == SidebarFullChat
}

// Rule maps a domain event to panel actions. Rules are evaluated in
// declaration order; every enabled rule whose condition holds fires.
type Rule struct {
	Name    string
	Event   DomainEventKind
	When    Condition // Optional; nil means always
	Actions []Action
	Enabled bool
}

// Engine evaluates trigger rules, folding the actions of firing rules
// through the reducer.
type Engine struct {
	reducer *Reducer
	rules   []Rule
}

// NewEngine creates a trigger engine with the given rule list.
func NewEngine(reducer *Reducer, rules []Rule) *Engine {
	return &Engine{reducer: reducer, rules: rules}
}

// Rules returns the rule list.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// SetEnabled flips a rule by name. Unknown names are ignored.
func (e *Engine) SetEnabled(name string, enabled bool) {
	for i := range e.rules {
		if e.rules[i].Name == name {
			e.rules[i].Enabled = enabled
		}
	}
}

// Evaluate runs the event through every rule in order and returns the
// resulting state plus the reducer events of every applied action.
// Conditions see the state as left by previously fired rules.
func (e *Engine) Evaluate(s State, ev DomainEvent, ctx TriggerContext) (State, []Event) {
	var events []Event
	for _, rule := range e.rules {
		if !rule.Enabled || rule.Event != ev.Kind {
			continue
		}
		if rule.When != nil && !rule.When.Evaluate(s, ctx) {
			continue
		}
		for _, action := range rule.Actions {
			next, event := e.reducer.Apply(s, action)
			s = next
			if event != nil {
				events = append(events, event)
			}
		}
	}
	return s, events
}

// DefaultRules returns the built-in trigger rules. The reducer's registry
// supplies pairing suggestions for the chat-companion rule.
func DefaultRules(reg *Registry) []Rule {
	chatCompanion := ContentDocumentation
	if pair, ok := reg.Pairing(ContentChat, func(c Content) bool { return !reg.IsBottom(c) }); ok {
		chatCompanion = pair
	}

	rules := []Rule{
		{
			Name:  "build-failure-shows-problems",
			Event: EventBuildFailed,
			Actions: []Action{
				ShowBottomPanel{},
				SetBottomPanelTab{Tab: ContentProblems},
			},
			Enabled: true,
		},
		{
			Name:  "test-failure-shows-problems",
			Event: EventTestsFailed,
			Actions: []Action{
				ShowBottomPanel{},
				SetBottomPanelTab{Tab: ContentProblems},
			},
			Enabled: true,
		},
		{
			Name:  "tests-pass-shows-output",
			Event: EventTestsPassed,
			When:  PanelNotVisible{Content: ContentOutput},
			Actions: []Action{
				ShowBottomPanel{},
				SetBottomPanelTab{Tab: ContentOutput},
			},
			Enabled: true,
		},
		{
			Name:  "breakpoint-shows-debug",
			Event: EventBreakpointHit,
			Actions: []Action{
				ShowBottomPanel{},
				SetBottomPanelTab{Tab: ContentDebug},
				AddSidebarComponent{Content: ContentInspector},
			},
			Enabled: true,
		},
		{
			Name:  "conflict-shows-git",
			Event: EventGitConflict,
			Actions: []Action{
				ShowBottomPanel{},
				SetBottomPanelTab{Tab: ContentGit},
			},
			Enabled: true,
		},
		{
			Name:  "help-shows-documentation",
			Event: EventHelpRequested,
			When:  PanelNotVisible{Content: ContentDocumentation},
			Actions: []Action{
				AddSidebarComponent{Content: ContentDocumentation},
			},
			Enabled: true,
		},
		{
			Name:  "errors-show-problems",
			Event: EventErrorDetected,
			When:  HasErrors{},
			Actions: []Action{
				ShowBottomPanel{},
				SetBottomPanelTab{Tab: ContentProblems},
			},
			Enabled: true,
		},
		// When the input panel extends while chat owns the whole sidebar,
		// chat must give way and pair with its suggested companion.
		{
			Name:  "extended-input-pairs-chat",
			Event: EventInputPanelExtended,
			When:  InFullChat{},
			Actions: []Action{
				RestoreSidebarLayout{},
				AddSidebarComponent{Content: chatCompanion},
			},
			Enabled: true,
		},
	}

	return rules
}

// BadgeActions returns badge updates for an event that was routed to a
// panel the user cannot currently see. The trigger engine leaves badge
// bookkeeping to the caller because only the host knows which panel has
// the user's attention.
func BadgeActions(s State, target Content, count int) []Action {
	if s.IsVisible(target) {
		return nil
	}
	return []Action{SetBadge{Content: target, Count: s.Badge(target) + lo.Max([]int{count, 1})}}
}
