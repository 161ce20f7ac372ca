package hookline

import "reflect"

// FilterID uniquely identifies a registered filter within a Registry.
// IDs are allocated from a monotonically increasing counter and are never
// reused for the lifetime of the registry.
type FilterID uint64

// Conventional priorities. Lower values run earlier. Any int is a valid
// priority; these constants only name common slots.
const (
	// PriorityFirst runs before all other filters.
	PriorityFirst = -1000
	// PriorityEarly runs early in the chain.
	PriorityEarly = -100
	// PriorityNormal is the default priority.
	PriorityNormal = 0
	// PriorityLate runs late in the chain.
	PriorityLate = 100
	// PriorityLast runs after all other filters.
	PriorityLast = 1000
)

// filter is a single registered callback on a hook.
// Immutable after registration; chains hold pointers so snapshots are cheap.
type filter struct {
	id       FilterID
	priority int
	fn       func(any) any

	// typ is the value type the callback expects. nil accepts any value.
	typ reflect.Type
}

// accepts reports whether the filter's type tag admits the given value type.
// vt is nil for an untyped nil value.
func (f *filter) accepts(vt reflect.Type) bool {
	if f.typ == nil {
		return true
	}
	if vt == f.typ {
		return true
	}
	if f.typ.Kind() == reflect.Interface {
		if f.typ.NumMethod() == 0 {
			return true
		}
		return vt != nil && vt.Implements(f.typ)
	}
	return false
}

// Entry is a read-only snapshot of a registered filter, for introspection.
type Entry struct {
	// ID is the filter's unique identifier.
	ID FilterID

	// Priority is the filter's ordering key.
	Priority int

	// Type is the value type the filter expects, or nil if it accepts any.
	Type reflect.Type
}
