// Package nils provides nil and identity helpers: reflective nil-ness
// checks, coalescing over zero values, and nil filtering.
package nils

import "reflect"

// IsNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// Coalesce returns the first non-nil pointer among candidates, or nil if
// all are nil.
func Coalesce[T any](candidates ...*T) *T {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}

	return nil
}

// FirstNonZero returns the first value that is not the zero value of T,
// or the zero value if all candidates are zero.
func FirstNonZero[T comparable](candidates ...T) T { //nolint:ireturn
	var zero T

	for _, c := range candidates {
		if c != zero {
			return c
		}
	}

	return zero
}

// OrElse dereferences ptr, falling back to def when ptr is nil.
func OrElse[T any](ptr *T, def T) T { //nolint:ireturn
	if ptr == nil {
		return def
	}

	return *ptr
}

// NonNil filters nil pointers out of a slice, preserving order.
// The input slice is not modified.
func NonNil[T any](values []*T) []*T {
	out := make([]*T, 0, len(values))

	for _, v := range values {
		if v != nil {
			out = append(out, v)
		}
	}

	return out
}

// Identity returns its argument unchanged. Useful as a default transform.
func Identity[T any](value T) T { //nolint:ireturn
	return value
}
