package guard

import "errors"

// Kind identifies which contract a Violation reports.
type Kind int

// Violation kinds. The zero Kind is invalid so an uninitialized Violation is
// easy to spot.
const (
	KindNullNotAllowed Kind = iota + 1
	KindEmptyNotAllowed
	KindWhitespaceNotAllowed
	KindDefaultValueNotAllowed
	KindOutOfRange
	KindCollectionEmpty
	KindItemNull
	KindItemEmpty
	KindItemWhitespace
	KindTypeMismatch
	KindEnumOutOfRange
	KindPredicateFailed
	KindInvalidURI
	KindStateInvalid
	KindCustom
)

// Violation codes (stable, used in messages, JSON output and i18n lookups).
const (
	CodeNullNotAllowed         = "null_not_allowed"
	CodeEmptyNotAllowed        = "empty_not_allowed"
	CodeWhitespaceNotAllowed   = "whitespace_not_allowed"
	CodeDefaultValueNotAllowed = "default_value_not_allowed"
	CodeOutOfRange             = "out_of_range"
	CodeCollectionEmpty        = "collection_empty"
	CodeItemNull               = "item_null"
	CodeItemEmpty              = "item_empty"
	CodeItemWhitespace         = "item_whitespace"
	CodeTypeMismatch           = "type_mismatch"
	CodeEnumOutOfRange         = "enum_out_of_range"
	CodePredicateFailed        = "predicate_failed"
	CodeInvalidURI             = "invalid_uri"
	CodeStateInvalid           = "state_invalid"
	CodeCustom                 = "custom"
)

// Class groups kinds by how a violation should be treated by whoever catches it.
type Class int

const (
	// ClassArgument marks a caller that passed an invalid value.
	ClassArgument Class = iota + 1
	// ClassState marks a broken invariant on already accepted state.
	ClassState
	// ClassAssertion marks a failed caller-defined condition.
	ClassAssertion
)

func (c Class) String() string {
	switch c {
	case ClassArgument:
		return "argument"
	case ClassState:
		return "state"
	case ClassAssertion:
		return "assertion"
	}
	return "unknown"
}

// Class sentinels. Every Violation unwraps to exactly one of them.
var (
	ErrArgument  = errors.New("guard: argument contract violated")
	ErrState     = errors.New("guard: state contract violated")
	ErrAssertion = errors.New("guard: assertion failed")
)

// Kind sentinels, usable with errors.Is to catch a single contract.
var (
	ErrNullNotAllowed         = errors.New(CodeNullNotAllowed)
	ErrEmptyNotAllowed        = errors.New(CodeEmptyNotAllowed)
	ErrWhitespaceNotAllowed   = errors.New(CodeWhitespaceNotAllowed)
	ErrDefaultValueNotAllowed = errors.New(CodeDefaultValueNotAllowed)
	ErrOutOfRange             = errors.New(CodeOutOfRange)
	ErrCollectionEmpty        = errors.New(CodeCollectionEmpty)
	ErrItemNull               = errors.New(CodeItemNull)
	ErrItemEmpty              = errors.New(CodeItemEmpty)
	ErrItemWhitespace         = errors.New(CodeItemWhitespace)
	ErrTypeMismatch           = errors.New(CodeTypeMismatch)
	ErrEnumOutOfRange         = errors.New(CodeEnumOutOfRange)
	ErrPredicateFailed        = errors.New(CodePredicateFailed)
	ErrInvalidURI             = errors.New(CodeInvalidURI)
	ErrStateInvalid           = errors.New(CodeStateInvalid)
	ErrCustom                 = errors.New(CodeCustom)
)

type kindInfo struct {
	code     string
	class    Class
	sentinel error
	parent   Kind
}

var kinds = [...]kindInfo{
	KindNullNotAllowed:         {CodeNullNotAllowed, ClassArgument, ErrNullNotAllowed, 0},
	KindEmptyNotAllowed:        {CodeEmptyNotAllowed, ClassArgument, ErrEmptyNotAllowed, 0},
	KindWhitespaceNotAllowed:   {CodeWhitespaceNotAllowed, ClassArgument, ErrWhitespaceNotAllowed, 0},
	KindDefaultValueNotAllowed: {CodeDefaultValueNotAllowed, ClassArgument, ErrDefaultValueNotAllowed, 0},
	KindOutOfRange:             {CodeOutOfRange, ClassArgument, ErrOutOfRange, 0},
	KindCollectionEmpty:        {CodeCollectionEmpty, ClassArgument, ErrCollectionEmpty, KindEmptyNotAllowed},
	KindItemNull:               {CodeItemNull, ClassArgument, ErrItemNull, KindNullNotAllowed},
	KindItemEmpty:              {CodeItemEmpty, ClassArgument, ErrItemEmpty, KindEmptyNotAllowed},
	KindItemWhitespace:         {CodeItemWhitespace, ClassArgument, ErrItemWhitespace, KindWhitespaceNotAllowed},
	KindTypeMismatch:           {CodeTypeMismatch, ClassArgument, ErrTypeMismatch, 0},
	KindEnumOutOfRange:         {CodeEnumOutOfRange, ClassArgument, ErrEnumOutOfRange, KindOutOfRange},
	KindPredicateFailed:        {CodePredicateFailed, ClassAssertion, ErrPredicateFailed, 0},
	KindInvalidURI:             {CodeInvalidURI, ClassArgument, ErrInvalidURI, 0},
	KindStateInvalid:           {CodeStateInvalid, ClassState, ErrStateInvalid, 0},
	KindCustom:                 {CodeCustom, ClassAssertion, ErrCustom, 0},
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindNullNotAllowed; k <= KindCustom; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a declared Kind.
func (k Kind) Valid() bool { return k >= KindNullNotAllowed && k <= KindCustom }

// String returns the stable code of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid_kind"
	}
	return kinds[k].code
}

// Class returns the propagation class of the kind.
func (k Kind) Class() Class {
	if !k.Valid() {
		return ClassAssertion
	}
	return kinds[k].class
}

// Sentinel returns the kind's sentinel error.
func (k Kind) Sentinel() error {
	if !k.Valid() {
		return ErrCustom
	}
	return kinds[k].sentinel
}

// Parent returns the broader kind this kind specializes, if any.
func (k Kind) Parent() (Kind, bool) {
	if !k.Valid() || kinds[k].parent == 0 {
		return 0, false
	}
	return kinds[k].parent, true
}

// KindOf resolves a code back to its Kind.
func KindOf(code string) (Kind, bool) {
	for k := KindNullNotAllowed; k <= KindCustom; k++ {
		if kinds[k].code == code {
			return k, true
		}
	}
	return 0, false
}

func (c Class) sentinel() error {
	switch c {
	case ClassArgument:
		return ErrArgument
	case ClassState:
		return ErrState
	}
	return ErrAssertion
}
