package hookline

// Stats contains registry counters. All counters are cumulative for the
// lifetime of the registry.
type Stats struct {
	// FiltersAdded is the total number of filters registered.
	FiltersAdded uint64

	// FiltersRemoved is the total number of filters removed, including
	// removals via RemoveAllFilters and Clear.
	FiltersRemoved uint64

	// ApplyPasses is the number of apply passes that ran at least one
	// filter. Identity passes on empty hooks are not counted.
	ApplyPasses uint64

	// CallbacksRun is the total number of filter callbacks executed.
	CallbacksRun uint64

	// TypeMismatches is the number of apply passes stopped by a type
	// mismatch.
	TypeMismatches uint64
}

// Stats returns a snapshot of the registry's counters.
func (r *Registry) Stats() Stats {
	return Stats{
		FiltersAdded:   r.filtersAdded.Load(),
		FiltersRemoved: r.filtersRemoved.Load(),
		ApplyPasses:    r.applyPasses.Load(),
		CallbacksRun:   r.callbacksRun.Load(),
		TypeMismatches: r.typeMismatches.Load(),
	}
}
