package hookline

import (
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// Registry maps hook names to priority-ordered filter chains.
// It is safe for concurrent use. The zero value is not usable; create
// registries with NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	hooks  map[string][]*filter
	nextID FilterID

	// Stats counters
	filtersAdded   atomic.Uint64
	filtersRemoved atomic.Uint64
	applyPasses    atomic.Uint64
	callbacksRun   atomic.Uint64
	typeMismatches atomic.Uint64
}

// NewRegistry creates an empty filter registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make(map[string][]*filter),
	}
}

// AddFilter registers an untyped filter on the named hook and returns its
// id. The callback receives the current value and returns the transformed
// value; it accepts values of any type. Lower priorities run earlier;
// filters sharing a priority run in registration order.
//
// AddFilter panics with ErrNilCallback if fn is nil.
func (r *Registry) AddFilter(hook string, priority int, fn func(any) any) FilterID {
	return r.add(hook, priority, nil, fn)
}

// add inserts a filter with an optional type tag, keeping the chain sorted.
func (r *Registry) add(hook string, priority int, typ reflect.Type, fn func(any) any) FilterID {
	if fn == nil {
		panic(ErrNilCallback)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f := &filter{
		id:       r.nextID,
		priority: priority,
		fn:       fn,
		typ:      typ,
	}

	chain := append(r.hooks[hook], f)

	// Stable sort keeps registration order for equal priorities.
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].priority < chain[j].priority
	})

	r.hooks[hook] = chain
	r.filtersAdded.Add(1)
	return f.id
}

// ApplyFilters folds value through every filter on the named hook in
// priority order and returns the final value. A hook with no filters is the
// identity: the input is returned unchanged.
//
// If a filter's type tag does not admit the current value, ApplyFilters
// stops and returns the value as transformed so far along with a
// *TypeMismatchError. Panics from callbacks propagate unmodified.
//
// The chain is snapshotted before the first callback runs: concurrent adds
// and removes do not affect an in-flight pass.
func (r *Registry) ApplyFilters(hook string, value any) (any, error) {
	chain := r.snapshot(hook)
	if len(chain) == 0 {
		return value, nil
	}

	r.applyPasses.Add(1)

	for _, f := range chain {
		vt := reflect.TypeOf(value)
		if !f.accepts(vt) {
			r.typeMismatches.Add(1)
			return value, &TypeMismatchError{
				Hook: hook,
				ID:   f.id,
				Want: f.typ,
				Got:  vt,
			}
		}
		value = f.fn(value)
		r.callbacksRun.Add(1)
	}

	return value, nil
}

// snapshot returns a copy of the hook's chain for iteration outside the lock.
func (r *Registry) snapshot(hook string) []*filter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := r.hooks[hook]
	if len(chain) == 0 {
		return nil
	}
	result := make([]*filter, len(chain))
	copy(result, chain)
	return result
}

// RemoveFilter removes the filter with the given id from the named hook.
// It returns true if a filter was removed, false if the id is not registered
// on that hook. Since ids are never reused, RemoveFilter returns true at
// most once per id.
func (r *Registry) RemoveFilter(hook string, id FilterID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	chain := r.hooks[hook]
	for i, f := range chain {
		if f.id == id {
			r.hooks[hook] = append(chain[:i], chain[i+1:]...)

			// A hook with zero filters is equivalent to an absent hook.
			if len(r.hooks[hook]) == 0 {
				delete(r.hooks, hook)
			}

			r.filtersRemoved.Add(1)
			return true
		}
	}
	return false
}

// RemoveAllFilters removes every filter from the named hook. Calling it on
// an empty or absent hook is a no-op.
func (r *Registry) RemoveAllFilters(hook string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chain, ok := r.hooks[hook]; ok {
		r.filtersRemoved.Add(uint64(len(chain)))
		delete(r.hooks, hook)
	}
}

// Has reports whether the named hook has at least one filter.
func (r *Registry) Has(hook string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks[hook]) > 0
}

// Count returns the number of filters on the named hook.
func (r *Registry) Count(hook string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks[hook])
}

// Len returns the total number of filters across all hooks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, chain := range r.hooks {
		total += len(chain)
	}
	return total
}

// Hooks returns the names of all hooks with at least one filter.
// Order is unspecified.
func (r *Registry) Hooks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.hooks) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.hooks))
	for name := range r.hooks {
		names = append(names, name)
	}
	return names
}

// Entries returns a snapshot of the named hook's filters in execution order.
func (r *Registry) Entries(hook string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := r.hooks[hook]
	if len(chain) == 0 {
		return nil
	}
	result := make([]Entry, len(chain))
	for i, f := range chain {
		result[i] = Entry{ID: f.id, Priority: f.priority, Type: f.typ}
	}
	return result
}

// Clear removes all filters from all hooks. Allocated ids are not reset.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, chain := range r.hooks {
		r.filtersRemoved.Add(uint64(len(chain)))
	}
	r.hooks = make(map[string][]*filter)
}
