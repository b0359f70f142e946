package layout

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrContentAlreadyRegistered = errors.New("content already registered")
	ErrContentNotFound          = errors.New("content not found")
)

// Registry manages content descriptor registration. It is constructed once
// at startup and injected into the reducer and the shell; there is no
// process-wide instance.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[Content]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[Content]Descriptor),
	}
}

// DefaultRegistry creates a registry pre-populated with the built-in catalog.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range defaultDescriptors() {
		r.MustRegister(d)
	}
	return r
}

// Register registers a content descriptor
func (r *Registry) Register(d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[d.Content]; exists {
		return ErrContentAlreadyRegistered
	}

	r.descriptors[d.Content] = d
	return nil
}

// MustRegister registers a descriptor and panics on error
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Get returns the descriptor for a content kind
func (r *Registry) Get(c Content) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.descriptors[c]
	if !exists {
		return Descriptor{}, ErrContentNotFound
	}
	return d, nil
}

// Has checks if a content kind is registered
func (r *Registry) Has(c Content) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.descriptors[c]
	return exists
}

// List returns all registered descriptors ordered by priority
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// ListCategory returns registered descriptors of one category, by priority
func (r *Registry) ListCategory(cat Category) []Descriptor {
	all := r.List()
	out := make([]Descriptor, 0, len(all))
	for _, d := range all {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// SupportsSplit reports whether a content kind may share the sidebar.
// Unknown content never supports splitting.
func (r *Registry) SupportsSplit(c Content) bool {
	d, err := r.Get(c)
	return err == nil && d.SupportsSplit
}

// SupportsFullExpand reports whether a content kind may take over the
// whole sidebar area.
func (r *Registry) SupportsFullExpand(c Content) bool {
	d, err := r.Get(c)
	return err == nil && d.SupportsFullExpand
}

// IsBottom reports whether a content kind belongs to the bottom panel.
func (r *Registry) IsBottom(c Content) bool {
	d, err := r.Get(c)
	return err == nil && d.Category == CategoryBottom
}

// Pairing returns the first suggested companion of c that is not c itself
// and passes the keep filter. Used by trigger rules to pick a natural
// partner for a panel that must share space.
func (r *Registry) Pairing(c Content, keep func(Content) bool) (Content, bool) {
	d, err := r.Get(c)
	if err != nil {
		return "", false
	}
	for _, p := range d.Pairings {
		if p == c {
			continue
		}
		if keep == nil || keep(p) {
			return p, true
		}
	}
	return "", false
}
