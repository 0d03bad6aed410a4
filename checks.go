package guard

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrNilCondition is wrapped by the violation returned when a check is given
// a nil predicate.
var ErrNilCondition = errors.New("guard: nil condition")

func nilCondition(opts []Option, kind Kind, value any) error {
	return fail(opts, failure{kind: kind, value: value, index: -1, cause: ErrNilCondition})
}

// NotNull returns p unchanged, or a KindNullNotAllowed violation when p is
// nil.
func NotNull[T any](p *T, opts ...Option) (*T, error) {
	if p == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	return p, nil
}

// NotNil is NotNull for any value that can be nil: interfaces, maps, slices,
// channels, funcs and pointers. Typed nils count as nil.
func NotNil[T any](v T, opts ...Option) (T, error) {
	if isNil(v) {
		var zero T
		return zero, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	return v, nil
}

// NotEmpty rejects the empty string with KindEmptyNotAllowed.
func NotEmpty[S ~string](s S, opts ...Option) (S, error) {
	if s == "" {
		var zero S
		return zero, fail(opts, failure{kind: KindEmptyNotAllowed, value: string(s), index: -1})
	}
	return s, nil
}

// NotWhitespace rejects the empty string (KindEmptyNotAllowed) and strings
// made only of Unicode white space (KindWhitespaceNotAllowed), in that order.
func NotWhitespace[S ~string](s S, opts ...Option) (S, error) {
	var zero S
	if s == "" {
		return zero, fail(opts, failure{kind: KindEmptyNotAllowed, value: string(s), index: -1})
	}
	if strings.TrimSpace(string(s)) == "" {
		return zero, fail(opts, failure{kind: KindWhitespaceNotAllowed, value: string(s), index: -1})
	}
	return s, nil
}

// NotNullOrEmpty checks a string reference for nil, then for emptiness.
func NotNullOrEmpty[S ~string](s *S, opts ...Option) (*S, error) {
	if s == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	if *s == "" {
		return nil, fail(opts, failure{kind: KindEmptyNotAllowed, value: string(*s), index: -1})
	}
	return s, nil
}

// NotNullOrWhitespace checks a string reference for nil, emptiness and
// white space, strictly in that order.
func NotNullOrWhitespace[S ~string](s *S, opts ...Option) (*S, error) {
	if s == nil {
		return nil, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	if _, err := NotWhitespace(*s, opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// ValueNotEmpty rejects the zero value of T with KindDefaultValueNotAllowed.
// Interface-typed T holding an incomparable dynamic value panics, as == does.
func ValueNotEmpty[T comparable](v T, opts ...Option) (T, error) {
	var zero T
	if v != zero {
		return v, nil
	}
	return zero, fail(opts, failure{
		kind:  KindDefaultValueNotAllowed,
		value: v,
		index: -1,
		data: map[string]string{
			"zero": describe(zero),
			"type": reflect.TypeFor[T]().String(),
		},
	})
}

// InRange returns v when cond(v) holds and a KindOutOfRange violation
// otherwise.
func InRange[T any](v T, cond func(T) bool, opts ...Option) (T, error) {
	if cond == nil {
		var zero T
		return zero, nilCondition(opts, KindOutOfRange, v)
	}
	if !cond(v) {
		var zero T
		return zero, fail(opts, failure{kind: KindOutOfRange, value: v, index: -1})
	}
	return v, nil
}

// Between checks lo <= v <= hi. NaN is never in range.
func Between[T constraints.Ordered](v, lo, hi T, opts ...Option) (T, error) {
	if v >= lo && v <= hi {
		return v, nil
	}
	var zero T
	return zero, fail(opts, failure{
		kind:  KindOutOfRange,
		value: v,
		index: -1,
		data:  map[string]string{"min": describe(lo), "max": describe(hi)},
	})
}

// Assert evaluates cond and reports KindPredicateFailed when it is false.
func Assert(cond func() bool, opts ...Option) error {
	if cond == nil {
		return nilCondition(opts, KindPredicateFailed, nil)
	}
	if !cond() {
		return fail(opts, failure{kind: KindPredicateFailed, index: -1})
	}
	return nil
}

// That is Assert for an already evaluated condition.
func That(cond bool, opts ...Option) error {
	if !cond {
		return fail(opts, failure{kind: KindPredicateFailed, index: -1})
	}
	return nil
}

// AssertErr evaluates cond and, when it is false, returns the error built by
// newErr from args. A nil newErr, or one that builds a nil error, yields a
// KindCustom violation wrapping ErrConstruction.
func AssertErr[E error](cond func() bool, newErr func(args ...any) E, args ...any) error {
	if cond == nil {
		return nilCondition(nil, KindPredicateFailed, nil)
	}
	if cond() {
		return nil
	}
	base := &Violation{Kind: KindPredicateFailed, Name: UnknownName, Index: -1}
	if newErr == nil {
		return constructionFailure(base)
	}
	err := newErr(args...)
	if isNil(err) {
		return constructionFailure(base)
	}
	return err
}

// ObjectState checks state that should already hold: a nil v reports
// KindNullNotAllowed, a false cond(v) reports KindStateInvalid.
func ObjectState[T any](v T, cond func(T) bool, opts ...Option) (T, error) {
	var zero T
	if isNil(v) {
		return zero, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	if cond == nil {
		return zero, nilCondition(opts, KindStateInvalid, v)
	}
	if !cond(v) {
		return zero, fail(opts, failure{kind: KindStateInvalid, value: v, index: -1})
	}
	return v, nil
}

// Is returns v asserted to T. Pointer and reference values come back as the
// same reference. A nil v reports KindNullNotAllowed and a v of another type
// KindTypeMismatch.
func Is[T any](v any, opts ...Option) (T, error) {
	var zero T
	if isNil(v) {
		return zero, fail(opts, failure{kind: KindNullNotAllowed, index: -1})
	}
	t, ok := v.(T)
	if !ok {
		return zero, fail(opts, failure{
			kind:  KindTypeMismatch,
			value: v,
			index: -1,
			data:  map[string]string{"expected": reflect.TypeFor[T]().String()},
		})
	}
	return t, nil
}

// WellFormedURI accepts absolute URIs with a scheme and no unescaped white
// space.
func WellFormedURI(s string, opts ...Option) (string, error) {
	if wellFormed(s) {
		return s, nil
	}
	return "", fail(opts, failure{kind: KindInvalidURI, value: s, index: -1})
}

func wellFormed(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return false
	}
	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

// Must returns v, or panics with err. It lets a check be used inline where
// a broken contract should stop the program:
//
//	cfg := guard.Must(guard.NotNull(cfg, guard.Name("cfg")))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustOK panics with err when it is non-nil.
func MustOK(err error) {
	if err != nil {
		panic(err)
	}
}
