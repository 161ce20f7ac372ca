// Package hookline provides a priority-ordered filter/hook registry for
// embedding extension points in Go programs.
//
// A hook is a named extension point. Callers attach filters to a hook: pure
// transformation callbacks with an integer priority. Applying a hook folds a
// value through every attached filter in priority order and returns the
// final result. The pattern is the classic add_filter/apply_filters pipeline
// found in plugin-oriented systems, made explicit and type-safe.
//
// # Basic Usage
//
//	reg := hookline.NewRegistry()
//
//	// Register filters (lower priority runs first)
//	hookline.Add(reg, "modify_number", 10, func(v int) int { return v + 5 })
//	hookline.Add(reg, "modify_number", 20, func(v int) int { return v * 2 })
//
//	// Fold a value through the chain: (10+5)*2 == 30
//	result, err := hookline.Apply(reg, "modify_number", 10)
//
// # Typed Hook Handles
//
// A Hook[T] binds a hook name to a value type once, so call sites don't
// repeat the type parameter:
//
//	title := hookline.NewHook[string](reg, "the_title")
//	id := title.Add(10, strings.TrimSpace)
//	out, err := title.Apply("  Hello  ")
//	title.Remove(id)
//
// # Ordering
//
// Filters run in ascending priority order. Filters sharing a priority run in
// registration order. Every registration returns a FilterID that is unique
// for the lifetime of the registry and never reused; RemoveFilter reports
// true exactly once per id.
//
// # Type Safety
//
// Filters registered through Add or a Hook[T] carry a type tag. Applying a
// hook with a value whose type does not match a filter's tag fails fast with
// a *TypeMismatchError rather than coercing or silently skipping. Filters
// registered through the untyped AddFilter accept any value.
//
// # Concurrency
//
// A Registry is safe for concurrent use. Apply snapshots the hook's filter
// chain before running any callback, so adding or removing filters during an
// in-flight apply pass does not affect that pass; the change is visible to
// the next pass. Callbacks run outside the registry lock and must not
// re-enter the registry for the same hook.
//
// The registry never recovers panics: a panicking callback propagates to the
// Apply caller unmodified.
//
// # Subpackages
//
//   - hooklua: exposes a registry to embedded gopher-lua scripts
//   - hookjson: ready-made filters over JSON document values
package hookline
