package hookline

import "reflect"

// Add registers a typed filter on the named hook and returns its id.
// The filter carries T's type tag: applying the hook with a value that is
// not a T fails fast with a *TypeMismatchError instead of panicking inside
// the callback.
//
// Add panics with ErrNilCallback if fn is nil.
func Add[T any](r *Registry, hook string, priority int, fn func(T) T) FilterID {
	if fn == nil {
		panic(ErrNilCallback)
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	erased := func(v any) any {
		// The tag check in ApplyFilters guarantees the assertion for
		// concrete T; the comma-ok form also admits an untyped nil when T
		// is an interface type.
		tv, _ := v.(T)
		return fn(tv)
	}
	return r.add(hook, priority, typ, erased)
}

// Apply folds value through the named hook's filters and returns the final
// value as a T. It behaves like Registry.ApplyFilters with the result
// asserted back to T. On a mid-chain type mismatch the value transformed so
// far is returned (when it is a T) along with the *TypeMismatchError; if the
// chain produced a value that is not a T at all, the input is returned with
// the error.
func Apply[T any](r *Registry, hook string, value T) (T, error) {
	out, err := r.ApplyFilters(hook, value)
	if out == nil {
		// An untyped nil result is only a valid T when T is an interface
		// type; for concrete T it is a mismatch, not a zero value.
		if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface {
			var zero T
			return zero, err
		}
		if err == nil {
			err = &TypeMismatchError{
				Hook: hook,
				Want: reflect.TypeOf((*T)(nil)).Elem(),
			}
		}
		return value, err
	}
	if tv, ok := out.(T); ok {
		return tv, err
	}
	if err == nil {
		err = &TypeMismatchError{
			Hook: hook,
			Want: reflect.TypeOf((*T)(nil)).Elem(),
			Got:  reflect.TypeOf(out),
		}
	}
	return value, err
}
