package hookline

import "testing"

func TestDefaultRegistry(t *testing.T) {
	// Use a hook name unique to this test; the default registry is shared
	// process state.
	const hook = "default_registry_test"
	defer RemoveAllFilters(hook)

	id := AddFilter(hook, 10, func(v any) any { return v.(int) + 5 })
	AddFilter(hook, 20, func(v any) any { return v.(int) * 2 })

	out, err := ApplyFilters(hook, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 30 {
		t.Errorf("expected 30, got %v", out)
	}

	if !RemoveFilter(hook, id) {
		t.Error("expected RemoveFilter to return true")
	}

	out, err = ApplyFilters(hook, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 20 {
		t.Errorf("expected 20 after removing the +5 filter, got %v", out)
	}
}

func TestDefault_IsPackageRegistry(t *testing.T) {
	const hook = "default_identity_test"
	defer Default().RemoveAllFilters(hook)

	// The package-level functions and Default() operate on the same state.
	Default().AddFilter(hook, PriorityNormal, func(v any) any { return v.(int) + 1 })

	out, err := ApplyFilters(hook, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 2 {
		t.Errorf("expected 2, got %v", out)
	}
}
