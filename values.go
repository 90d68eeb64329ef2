package candv

import (
	"fmt"
	"iter"
)

// Values is a container specialization for value constants. It embeds
// Constants, so it is declared and registered the same way:
//
//	type httpPorts struct {
//	    candv.Values[int]
//	    HTTP  *candv.ValueConstant[int]
//	    HTTPS *candv.ValueConstant[int]
//	}
//
//	var HTTPPorts = candv.Register("HTTPPorts", &httpPorts{
//	    HTTP:  candv.NewValue(80),
//	    HTTPS: candv.NewValue(443),
//	})
//
// On top of the container surface it supports lookups and enumeration by
// attached value. Groups promoted from value constants participate through
// their source; members without a value of type T are skipped.
type Values[T comparable] struct {
	Constants
}

// GetByValue returns the first declared constant with the given value.
//
// When duplicates exist, declaration order decides: the earliest match wins.
// The returned error wraps ErrValueNotFound when no constant has the value.
func (v *Values[T]) GetByValue(value T) (Member, error) {
	for m := range v.IterMembers() {
		if got, ok := memberValue[T](m); ok && got == value {
			return m, nil
		}
	}
	return nil, fmt.Errorf(
		"constant with value %#v is not present in %s: %w",
		value, v.display(), ErrValueNotFound,
	)
}

// FilterByValue returns all constants with the given value, in declaration
// order.
func (v *Values[T]) FilterByValue(value T) []Member {
	var matched []Member
	for m := range v.IterMembers() {
		if got, ok := memberValue[T](m); ok && got == value {
			matched = append(matched, m)
		}
	}
	return matched
}

// AllValues returns the attached values in declaration order.
//
// Not named Values: the embedded field of a container struct is already
// named Values and would shadow the promoted method.
func (v *Values[T]) AllValues() []T {
	values := make([]T, 0, v.Len())
	for m := range v.IterMembers() {
		if got, ok := memberValue[T](m); ok {
			values = append(values, got)
		}
	}
	return values
}

// IterValues iterates the attached values in declaration order.
func (v *Values[T]) IterValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for m := range v.IterMembers() {
			if got, ok := memberValue[T](m); ok {
				if !yield(got) {
					return
				}
			}
		}
	}
}

// memberValue extracts a member's attached value of type T, looking through
// groups to their promoted source.
func memberValue[T any](m Member) (T, bool) {
	if vc, ok := m.(Valuer[T]); ok {
		return vc.Value(), true
	}
	if g, ok := m.(*Group); ok {
		if vc, ok := g.Source().(Valuer[T]); ok {
			return vc.Value(), true
		}
	}
	var zero T
	return zero, false
}
