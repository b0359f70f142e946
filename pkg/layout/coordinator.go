package layout

import "sync"

// Coordinator owns the live layout state and serializes access to it. The
// reducer and trigger engine stay pure; the coordinator is the single
// mutation point the rest of the application talks to.
type Coordinator struct {
	mu        sync.Mutex
	state     State
	reducer   *Reducer
	engine    *Engine
	listeners []func(Event)
}

// NewCoordinator creates a coordinator starting from the default state. A
// nil registry means the built-in catalog; nil rules means DefaultRules.
func NewCoordinator(cfg Config, reg *Registry, rules []Rule) *Coordinator {
	if reg == nil {
		reg = DefaultRegistry()
	}
	reducer := NewReducer(cfg, reg)
	if rules == nil {
		rules = DefaultRules(reg)
	}
	return &Coordinator{
		state:   DefaultState(reducer.Config()),
		reducer: reducer,
		engine:  NewEngine(reducer, rules),
	}
}

// State returns a copy of the current layout state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Reducer exposes the underlying reducer for read-only queries such as the
// preset catalog and the content registry.
func (c *Coordinator) Reducer() *Reducer {
	return c.reducer
}

// Engine exposes the trigger engine for rule toggling.
func (c *Coordinator) Engine() *Engine {
	return c.engine
}

// Dispatch applies a single action and notifies listeners. It returns the
// reducer event, nil if the action was a no-op.
func (c *Coordinator) Dispatch(action Action) Event {
	c.mu.Lock()
	next, event := c.reducer.Apply(c.state, action)
	c.state = next
	listeners := c.listeners
	c.mu.Unlock()

	if event != nil {
		for _, fn := range listeners {
			fn(event)
		}
	}
	return event
}

// HandleDomainEvent routes a workspace event through the trigger engine and
// notifies listeners of every resulting state change.
func (c *Coordinator) HandleDomainEvent(ev DomainEvent, ctx TriggerContext) []Event {
	c.mu.Lock()
	next, events := c.engine.Evaluate(c.state, ev, ctx)
	c.state = next
	listeners := c.listeners
	c.mu.Unlock()

	for _, event := range events {
		for _, fn := range listeners {
			fn(event)
		}
	}
	return events
}

// Frames computes the panel frames for the current state.
func (c *Coordinator) Frames(vp Viewport) Frames {
	c.mu.Lock()
	s := c.state
	c.mu.Unlock()
	return Calculate(s, vp, c.reducer.Config())
}

// Subscribe registers a listener for reducer events. Listeners run on the
// dispatching goroutine and must not call back into the coordinator.
func (c *Coordinator) Subscribe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}
