package guard

import (
	"reflect"
	"slices"

	"golang.org/x/exp/constraints"
)

// Enumerated is implemented by enum-like types that can list their declared
// members:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//	)
//
//	func (Color) Members() []Color { return []Color{Red, Green} }
type Enumerated[E comparable] interface {
	comparable
	Members() []E
}

// EnumSet is the declared value set of an enum-like type E.
type EnumSet[E comparable] struct {
	members map[E]struct{}
}

// NewEnumSet declares the members of E.
func NewEnumSet[E comparable](members ...E) EnumSet[E] {
	m := make(map[E]struct{}, len(members))
	for _, e := range members {
		m[e] = struct{}{}
	}
	return EnumSet[E]{members: m}
}

// Contains reports whether v is a declared member.
func (s EnumSet[E]) Contains(v E) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of declared members.
func (s EnumSet[E]) Len() int { return len(s.members) }

func enumFailure[E any](v E, opts []Option) error {
	return fail(opts, failure{
		kind:  KindEnumOutOfRange,
		value: v,
		index: -1,
		data:  map[string]string{"type": reflect.TypeFor[E]().String()},
	})
}

// EnumInRange returns v when it is one of v.Members(), and a
// KindEnumOutOfRange violation otherwise.
func EnumInRange[E Enumerated[E]](v E, opts ...Option) (E, error) {
	if slices.Contains(v.Members(), v) {
		return v, nil
	}
	var zero E
	return zero, enumFailure(v, opts)
}

// EnumIn returns v when set declares it.
func EnumIn[E comparable](v E, set EnumSet[E], opts ...Option) (E, error) {
	if set.Contains(v) {
		return v, nil
	}
	var zero E
	return zero, enumFailure(v, opts)
}

// EnumSpan is EnumIn for iota-style enums whose members are exactly the
// contiguous values first..last.
func EnumSpan[E constraints.Integer](v, first, last E, opts ...Option) (E, error) {
	if v >= first && v <= last {
		return v, nil
	}
	var zero E
	return zero, enumFailure(v, opts)
}
