package hookline

// Hook is a typed handle binding a hook name to a value type. Filters added
// through the handle all share the same value type, so call sites don't
// repeat the type parameter and cannot register a mismatched callback.
//
// A Hook is a view over its Registry: handles for the same name share one
// filter chain, and ids are interchangeable between the handle and the
// registry's own methods.
type Hook[T any] struct {
	reg  *Registry
	name string
}

// NewHook creates a typed handle for the named hook on the given registry.
func NewHook[T any](r *Registry, name string) *Hook[T] {
	return &Hook[T]{reg: r, name: name}
}

// Name returns the hook name.
func (h *Hook[T]) Name() string {
	return h.name
}

// Registry returns the registry the handle operates on.
func (h *Hook[T]) Registry() *Registry {
	return h.reg
}

// Add registers a filter on the hook and returns its id.
func (h *Hook[T]) Add(priority int, fn func(T) T) FilterID {
	return Add(h.reg, h.name, priority, fn)
}

// Apply folds value through the hook's filters in priority order.
// A hook with no filters returns the input unchanged. The error is non-nil
// only if a filter with a different value type was registered on the same
// name through the untyped or differently-typed API.
func (h *Hook[T]) Apply(value T) (T, error) {
	return Apply(h.reg, h.name, value)
}

// Remove removes the filter with the given id from the hook.
func (h *Hook[T]) Remove(id FilterID) bool {
	return h.reg.RemoveFilter(h.name, id)
}

// RemoveAll removes every filter from the hook.
func (h *Hook[T]) RemoveAll() {
	h.reg.RemoveAllFilters(h.name)
}

// Count returns the number of filters on the hook.
func (h *Hook[T]) Count() int {
	return h.reg.Count(h.name)
}
