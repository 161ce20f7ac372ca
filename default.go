package hookline

// defaultRegistry backs the package-level convenience functions. Code that
// needs isolation (tests, multiple plugin scopes) should construct its own
// Registry instead.
var defaultRegistry = NewRegistry()

// Default returns the process-wide default registry used by the
// package-level functions.
func Default() *Registry {
	return defaultRegistry
}

// AddFilter registers an untyped filter on the default registry.
func AddFilter(hook string, priority int, fn func(any) any) FilterID {
	return defaultRegistry.AddFilter(hook, priority, fn)
}

// ApplyFilters folds value through the named hook on the default registry.
func ApplyFilters(hook string, value any) (any, error) {
	return defaultRegistry.ApplyFilters(hook, value)
}

// RemoveFilter removes a filter by id from the default registry.
func RemoveFilter(hook string, id FilterID) bool {
	return defaultRegistry.RemoveFilter(hook, id)
}

// RemoveAllFilters removes every filter from the named hook on the default
// registry.
func RemoveAllFilters(hook string) {
	defaultRegistry.RemoveAllFilters(hook)
}
