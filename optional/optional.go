// Package optional mirrors every check in guard (and structcheck) behind the
// process-wide diagnostic switch, guard.FullCheck.
//
// When the switch is off each function returns its primary argument and a
// nil error without evaluating anything: predicates, message factories and
// error factories passed in are never called. When it is on the call is
// delegated unchanged.
//
// Arguments are still evaluated by the caller before the call, as for any Go
// function. Pass conditions as funcs (Assert, InRange, ObjectState, ...) to
// keep expensive or side-effecting work out of builds that disable the
// switch; That takes an already computed bool and therefore cannot.
package optional

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/reoring/guard"
	"github.com/reoring/guard/structcheck"
)

// Enabled reports whether diagnostic checks run.
func Enabled() bool { return guard.FullCheck() }

// NotNull is guard.NotNull behind the diagnostic switch.
func NotNull[T any](p *T, opts ...guard.Option) (*T, error) {
	if !guard.FullCheck() {
		return p, nil
	}
	return guard.NotNull(p, opts...)
}

// NotNil is guard.NotNil behind the diagnostic switch.
func NotNil[T any](v T, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.NotNil(v, opts...)
}

// NotEmpty is guard.NotEmpty behind the diagnostic switch.
func NotEmpty[S ~string](s S, opts ...guard.Option) (S, error) {
	if !guard.FullCheck() {
		return s, nil
	}
	return guard.NotEmpty(s, opts...)
}

// NotWhitespace is guard.NotWhitespace behind the diagnostic switch.
func NotWhitespace[S ~string](s S, opts ...guard.Option) (S, error) {
	if !guard.FullCheck() {
		return s, nil
	}
	return guard.NotWhitespace(s, opts...)
}

// NotNullOrEmpty is guard.NotNullOrEmpty behind the diagnostic switch.
func NotNullOrEmpty[S ~string](s *S, opts ...guard.Option) (*S, error) {
	if !guard.FullCheck() {
		return s, nil
	}
	return guard.NotNullOrEmpty(s, opts...)
}

// NotNullOrWhitespace is guard.NotNullOrWhitespace behind the diagnostic switch.
func NotNullOrWhitespace[S ~string](s *S, opts ...guard.Option) (*S, error) {
	if !guard.FullCheck() {
		return s, nil
	}
	return guard.NotNullOrWhitespace(s, opts...)
}

// ValueNotEmpty is guard.ValueNotEmpty behind the diagnostic switch.
func ValueNotEmpty[T comparable](v T, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.ValueNotEmpty(v, opts...)
}

// InRange is guard.InRange behind the diagnostic switch.
func InRange[T any](v T, cond func(T) bool, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.InRange(v, cond, opts...)
}

// Between is guard.Between behind the diagnostic switch.
func Between[T constraints.Ordered](v, lo, hi T, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.Between(v, lo, hi, opts...)
}

// Assert is guard.Assert behind the diagnostic switch. cond is never called
// while the switch is off.
func Assert(cond func() bool, opts ...guard.Option) error {
	if !guard.FullCheck() {
		return nil
	}
	return guard.Assert(cond, opts...)
}

// That is guard.That behind the diagnostic switch.
func That(cond bool, opts ...guard.Option) error {
	if !guard.FullCheck() {
		return nil
	}
	return guard.That(cond, opts...)
}

// AssertErr is guard.AssertErr behind the diagnostic switch. Neither cond
// nor newErr is called while the switch is off.
func AssertErr[E error](cond func() bool, newErr func(args ...any) E, args ...any) error {
	if !guard.FullCheck() {
		return nil
	}
	return guard.AssertErr(cond, newErr, args...)
}

// ObjectState is guard.ObjectState behind the diagnostic switch.
func ObjectState[T any](v T, cond func(T) bool, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.ObjectState(v, cond, opts...)
}

// EnumInRange is guard.EnumInRange behind the diagnostic switch.
func EnumInRange[E guard.Enumerated[E]](v E, opts ...guard.Option) (E, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.EnumInRange(v, opts...)
}

// EnumIn is guard.EnumIn behind the diagnostic switch.
func EnumIn[E comparable](v E, set guard.EnumSet[E], opts ...guard.Option) (E, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.EnumIn(v, set, opts...)
}

// EnumSpan is guard.EnumSpan behind the diagnostic switch.
func EnumSpan[E constraints.Integer](v, first, last E, opts ...guard.Option) (E, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return guard.EnumSpan(v, first, last, opts...)
}

// Is skips the type check while the switch is off, but a value that is not
// a T still cannot be returned as one: the zero T comes back instead, with
// a nil error.
func Is[T any](v any, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		t, _ := v.(T)
		return t, nil
	}
	return guard.Is[T](v, opts...)
}

// WellFormedURI is guard.WellFormedURI behind the diagnostic switch.
func WellFormedURI(s string, opts ...guard.Option) (string, error) {
	if !guard.FullCheck() {
		return s, nil
	}
	return guard.WellFormedURI(s, opts...)
}

// ItemsNotNull is guard.ItemsNotNull behind the diagnostic switch.
func ItemsNotNull[S ~[]E, E any](items S, opts ...guard.Option) (S, error) {
	if !guard.FullCheck() {
		return items, nil
	}
	return guard.ItemsNotNull(items, opts...)
}

// ItemsNotEmpty is guard.ItemsNotEmpty behind the diagnostic switch.
func ItemsNotEmpty[S ~[]E, E any](items S, opts ...guard.Option) (S, error) {
	if !guard.FullCheck() {
		return items, nil
	}
	return guard.ItemsNotEmpty(items, opts...)
}

// ItemsNotWhitespace is guard.ItemsNotWhitespace behind the diagnostic switch.
func ItemsNotWhitespace[S ~[]E, E any](items S, opts ...guard.Option) (S, error) {
	if !guard.FullCheck() {
		return items, nil
	}
	return guard.ItemsNotWhitespace(items, opts...)
}

// All is guard.All behind the diagnostic switch.
func All[S ~[]E, E any](items S, pred func(E) bool, opts ...guard.Option) (S, error) {
	if !guard.FullCheck() {
		return items, nil
	}
	return guard.All(items, pred, opts...)
}

// NotNullNotEmpty is guard.NotNullNotEmpty behind the diagnostic switch.
func NotNullNotEmpty[S ~[]E, E any](items S, opts ...guard.Option) (S, error) {
	if !guard.FullCheck() {
		return items, nil
	}
	return guard.NotNullNotEmpty(items, opts...)
}

// MapNotNullNotEmpty is guard.MapNotNullNotEmpty behind the diagnostic switch.
func MapNotNullNotEmpty[M ~map[K]V, K comparable, V any](m M, opts ...guard.Option) (M, error) {
	if !guard.FullCheck() {
		return m, nil
	}
	return guard.MapNotNullNotEmpty(m, opts...)
}

// The Seq variants return seq itself, unconsumed, while the switch is off.

// SeqItemsNotNull is guard.SeqItemsNotNull behind the diagnostic switch.
func SeqItemsNotNull[E any](seq iter.Seq[E], opts ...guard.Option) (iter.Seq[E], error) {
	if !guard.FullCheck() {
		return seq, nil
	}
	return guard.SeqItemsNotNull(seq, opts...)
}

// SeqItemsNotEmpty is guard.SeqItemsNotEmpty behind the diagnostic switch.
func SeqItemsNotEmpty[E any](seq iter.Seq[E], opts ...guard.Option) (iter.Seq[E], error) {
	if !guard.FullCheck() {
		return seq, nil
	}
	return guard.SeqItemsNotEmpty(seq, opts...)
}

// SeqItemsNotWhitespace is guard.SeqItemsNotWhitespace behind the diagnostic switch.
func SeqItemsNotWhitespace[E any](seq iter.Seq[E], opts ...guard.Option) (iter.Seq[E], error) {
	if !guard.FullCheck() {
		return seq, nil
	}
	return guard.SeqItemsNotWhitespace(seq, opts...)
}

// SeqAll is guard.SeqAll behind the diagnostic switch.
func SeqAll[E any](seq iter.Seq[E], pred func(E) bool, opts ...guard.Option) (iter.Seq[E], error) {
	if !guard.FullCheck() {
		return seq, nil
	}
	return guard.SeqAll(seq, pred, opts...)
}

// SeqNotNullNotEmpty is guard.SeqNotNullNotEmpty behind the diagnostic switch.
func SeqNotNullNotEmpty[E any](seq iter.Seq[E], opts ...guard.Option) (iter.Seq[E], error) {
	if !guard.FullCheck() {
		return seq, nil
	}
	return guard.SeqNotNullNotEmpty(seq, opts...)
}

// Valid is structcheck.Valid behind the diagnostic switch.
func Valid[T any](v T, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return structcheck.Valid(v, opts...)
}

// Input is structcheck.Input behind the diagnostic switch.
func Input[T any](v T, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return structcheck.Input(v, opts...)
}

// Var is structcheck.Var behind the diagnostic switch.
func Var[T any](v T, tag string, opts ...guard.Option) (T, error) {
	if !guard.FullCheck() {
		return v, nil
	}
	return structcheck.Var(v, tag, opts...)
}
