package guard_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/guard"
)

type account struct {
	ID      string
	Balance int
}

func requireKind(t *testing.T, err error, kind guard.Kind) *guard.Violation {
	t.Helper()
	require.Error(t, err)
	v, ok := guard.AsViolation(err)
	require.True(t, ok, "expected *guard.Violation, got %T: %v", err, err)
	require.Equal(t, kind, v.Kind, "unexpected kind, message: %s", v.Message)
	return v
}

func TestNotNull_ReturnsSameReference(t *testing.T) {
	acc := &account{ID: "a-1"}
	got, err := guard.NotNull(acc, guard.Name("acc"))
	require.NoError(t, err)
	assert.Same(t, acc, got)
	assert.Equal(t, "a-1", got.ID)
}

func TestNotNull_Nil(t *testing.T) {
	_, err := guard.NotNull[account](nil, guard.Name("acc"))
	v := requireKind(t, err, guard.KindNullNotAllowed)
	assert.Equal(t, "acc", v.Name)
	assert.Equal(t, "acc must not be nil", v.Message)
	assert.True(t, errors.Is(err, guard.ErrNullNotAllowed))
	assert.True(t, errors.Is(err, guard.ErrArgument))

	_, err = guard.NotNull[account](nil)
	v = requireKind(t, err, guard.KindNullNotAllowed)
	assert.Equal(t, guard.UnknownName, v.Name)
	assert.Equal(t, "unknown must not be nil", v.Message)
}

func TestNotNil_TypedNil(t *testing.T) {
	var acc *account
	var iface fmt.Stringer
	var m map[string]int

	_, err := guard.NotNil(any(acc))
	requireKind(t, err, guard.KindNullNotAllowed)
	_, err = guard.NotNil(iface)
	requireKind(t, err, guard.KindNullNotAllowed)
	_, err = guard.NotNil(m)
	requireKind(t, err, guard.KindNullNotAllowed)

	m2 := map[string]int{}
	got, err := guard.NotNil(m2)
	require.NoError(t, err)
	got["k"] = 1
	assert.Equal(t, 1, m2["k"], "map must be returned by reference")

	n, err := guard.NotNil(0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStrings_StrictOrder(t *testing.T) {
	empty := ""
	blank := " \t\n"
	ok := " x "

	_, err := guard.NotNullOrEmpty(&empty)
	requireKind(t, err, guard.KindEmptyNotAllowed)

	_, err = guard.NotNullOrEmpty[string](nil)
	requireKind(t, err, guard.KindNullNotAllowed)

	got, err := guard.NotNullOrEmpty(&blank)
	require.NoError(t, err)
	assert.Same(t, &blank, got)

	_, err = guard.NotNullOrWhitespace[string](nil)
	requireKind(t, err, guard.KindNullNotAllowed)
	_, err = guard.NotNullOrWhitespace(&empty)
	requireKind(t, err, guard.KindEmptyNotAllowed)
	_, err = guard.NotNullOrWhitespace(&blank)
	requireKind(t, err, guard.KindWhitespaceNotAllowed)
	got, err = guard.NotNullOrWhitespace(&ok)
	require.NoError(t, err)
	assert.Same(t, &ok, got)

	_, err = guard.NotEmpty("")
	requireKind(t, err, guard.KindEmptyNotAllowed)
	_, err = guard.NotWhitespace("  ")
	requireKind(t, err, guard.KindWhitespaceNotAllowed)
	s, err := guard.NotWhitespace(ok)
	require.NoError(t, err)
	assert.Equal(t, ok, s)
}

func TestStrings_ReturnZeroOnFailure(t *testing.T) {
	type sku string
	blank := sku(" \t")

	s, err := guard.NotEmpty(sku(""))
	require.Error(t, err)
	assert.Equal(t, sku(""), s)

	s, err = guard.NotWhitespace(blank)
	require.Error(t, err)
	assert.Equal(t, sku(""), s)

	s, err = guard.NotWhitespace(sku(""))
	require.Error(t, err)
	assert.Equal(t, sku(""), s)

	p, err := guard.NotNullOrWhitespace(&blank)
	require.Error(t, err)
	assert.Nil(t, p)
}

func TestValueNotEmpty(t *testing.T) {
	type point struct{ X, Y int }

	_, err := guard.ValueNotEmpty(point{}, guard.Name("origin"))
	v := requireKind(t, err, guard.KindDefaultValueNotAllowed)
	assert.Contains(t, v.Message, "origin")
	assert.Contains(t, v.Message, "{0 0}")
	assert.Contains(t, v.Message, "guard_test.point")

	p, err := guard.ValueNotEmpty(point{X: 1})
	require.NoError(t, err)
	assert.Equal(t, point{X: 1}, p)

	_, err = guard.ValueNotEmpty(0)
	requireKind(t, err, guard.KindDefaultValueNotAllowed)
}

func TestInRange(t *testing.T) {
	between := func(v int) bool { return v > 0 && v < 10 }

	got, err := guard.InRange(5, between)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = guard.InRange(15, between, guard.Name("qty"))
	v := requireKind(t, err, guard.KindOutOfRange)
	assert.Equal(t, 15, v.Value)
	assert.Equal(t, "qty is out of range: 15", v.Message)

	_, err = guard.InRange(1, nil)
	requireKind(t, err, guard.KindOutOfRange)
	assert.ErrorIs(t, err, guard.ErrNilCondition)
}

func TestBetween(t *testing.T) {
	_, err := guard.Between(10, 1, 10)
	require.NoError(t, err)
	_, err = guard.Between(0, 1, 10)
	requireKind(t, err, guard.KindOutOfRange)
	_, err = guard.Between(math.NaN(), 0, 1)
	requireKind(t, err, guard.KindOutOfRange)
	_, err = guard.Between("m", "a", "z")
	require.NoError(t, err)
}

func TestAssert(t *testing.T) {
	require.NoError(t, guard.Assert(func() bool { return true }))

	err := guard.Assert(func() bool { return false }, guard.Name("ledger"))
	v := requireKind(t, err, guard.KindPredicateFailed)
	assert.Equal(t, guard.ClassAssertion, v.Class())
	assert.ErrorIs(t, err, guard.ErrAssertion)

	require.NoError(t, guard.That(true))
	requireKind(t, guard.That(false), guard.KindPredicateFailed)
}

type limitError struct {
	limit int
}

func (e *limitError) Error() string { return fmt.Sprintf("limit %d exceeded", e.limit) }

func TestAssertErr(t *testing.T) {
	newLimit := func(args ...any) *limitError { return &limitError{limit: args[0].(int)} }

	require.NoError(t, guard.AssertErr(func() bool { return true }, newLimit, 3))

	err := guard.AssertErr(func() bool { return false }, newLimit, 3)
	var le *limitError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.limit)

	err = guard.AssertErr[*limitError](func() bool { return false }, nil)
	requireKind(t, err, guard.KindCustom)
	assert.ErrorIs(t, err, guard.ErrConstruction)

	nilFactory := func(...any) *limitError { return nil }
	err = guard.AssertErr(func() bool { return false }, nilFactory)
	assert.ErrorIs(t, err, guard.ErrConstruction)
}

func TestObjectState(t *testing.T) {
	funded := func(a *account) bool { return a.Balance > 0 }

	acc := &account{Balance: 10}
	got, err := guard.ObjectState(acc, funded)
	require.NoError(t, err)
	assert.Same(t, acc, got)

	_, err = guard.ObjectState(&account{}, funded, guard.Name("acc"))
	v := requireKind(t, err, guard.KindStateInvalid)
	assert.Equal(t, guard.ClassState, v.Class())
	assert.ErrorIs(t, err, guard.ErrState)

	_, err = guard.ObjectState[*account](nil, funded)
	requireKind(t, err, guard.KindNullNotAllowed)
}

func TestIs(t *testing.T) {
	acc := &account{ID: "x"}
	var v any = acc

	got, err := guard.Is[*account](v)
	require.NoError(t, err)
	assert.Same(t, acc, got)

	_, err = guard.Is[string](v, guard.Name("payload"))
	mismatch := requireKind(t, err, guard.KindTypeMismatch)
	assert.Equal(t, "payload has type *guard_test.account, expected string", mismatch.Message)

	_, err = guard.Is[*account](nil)
	requireKind(t, err, guard.KindNullNotAllowed)
	_, err = guard.Is[*account](any((*account)(nil)))
	requireKind(t, err, guard.KindNullNotAllowed)

	s, err := guard.Is[fmt.Stringer](any(stringer("ok")))
	require.NoError(t, err)
	assert.Equal(t, "ok", s.String())
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestWellFormedURI(t *testing.T) {
	for _, ok := range []string{"https://example.com/a?b=c", "mailto:ops@example.com", "urn:isbn:0451450523"} {
		_, err := guard.WellFormedURI(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "/relative/path", "http://exa mple.com", "://nope"} {
		_, err := guard.WellFormedURI(bad)
		assert.ErrorIs(t, err, guard.ErrInvalidURI, bad)
	}
}

func TestMust(t *testing.T) {
	acc := &account{}
	assert.Same(t, acc, guard.Must(guard.NotNull(acc)))

	assert.PanicsWithError(t, "null_not_allowed: acc must not be nil", func() {
		guard.Must(guard.NotNull[account](nil, guard.Name("acc")))
	})
	assert.Panics(t, func() { guard.MustOK(guard.That(false)) })
}

func TestExplicitMessageAlwaysWins(t *testing.T) {
	msg := guard.Message("explicit")
	factory := guard.MessageFunc(func(any) string { return "from factory" })
	var nilAcc *account
	var nilSlice []int

	cases := map[string]func() error{
		"NotNull":            func() error { _, err := guard.NotNull(nilAcc, msg, factory); return err },
		"NotEmpty":           func() error { _, err := guard.NotEmpty("", msg, factory); return err },
		"NotWhitespace":      func() error { _, err := guard.NotWhitespace(" ", msg, factory); return err },
		"ValueNotEmpty":      func() error { _, err := guard.ValueNotEmpty(0, msg, factory); return err },
		"InRange":            func() error { _, err := guard.InRange(1, func(int) bool { return false }, msg); return err },
		"Between":            func() error { _, err := guard.Between(5, 0, 1, msg); return err },
		"Assert":             func() error { return guard.Assert(func() bool { return false }, msg) },
		"That":               func() error { return guard.That(false, msg) },
		"ObjectState":        func() error { _, err := guard.ObjectState(&account{}, func(*account) bool { return false }, msg); return err },
		"Is":                 func() error { _, err := guard.Is[int]("x", msg); return err },
		"EnumSpan":           func() error { _, err := guard.EnumSpan(9, 0, 3, msg); return err },
		"ItemsNotNull":       func() error { _, err := guard.ItemsNotNull([]*int{nil}, msg); return err },
		"ItemsNotWhitespace": func() error { _, err := guard.ItemsNotWhitespace([]string{" "}, msg); return err },
		"All":                func() error { _, err := guard.All([]int{1}, func(int) bool { return false }, msg); return err },
		"NotNullNotEmpty":    func() error { _, err := guard.NotNullNotEmpty(nilSlice, msg); return err },
		"WellFormedURI":      func() error { _, err := guard.WellFormedURI("nope", msg); return err },
	}
	for name, run := range cases {
		t.Run(name, func(t *testing.T) {
			v, ok := guard.AsViolation(run())
			require.True(t, ok)
			assert.Equal(t, "explicit", v.Message)
		})
	}
}

func TestMessageFunc_ReceivesOffendingValue(t *testing.T) {
	var seen any
	_, err := guard.InRange(42, func(int) bool { return false }, guard.MessageFunc(func(v any) string {
		seen = v
		return "custom 42"
	}))
	v := requireKind(t, err, guard.KindOutOfRange)
	assert.Equal(t, 42, seen)
	assert.Equal(t, "custom 42", v.Message)
}

func TestMessageFunc_NotCalledOnSuccess(t *testing.T) {
	calls := 0
	factory := guard.MessageFunc(func(any) string { calls++; return "" })
	_, _ = guard.NotEmpty("x", factory)
	_, _ = guard.InRange(1, func(int) bool { return true }, factory)
	assert.Zero(t, calls)
}
