package guard

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// UnknownName is the subject name used when a check is not given one.
const UnknownName = "unknown"

// ErrConstruction reports that a caller-supplied error factory could not
// produce the error it was asked for. It is wrapped by the Violation returned
// in that case.
var ErrConstruction = errors.New("guard: error factory produced no error")

// Violation reports one broken contract. It is created when a check fails
// and is never mutated by this package afterwards.
type Violation struct {
	Kind    Kind
	Name    string // Subject name, UnknownName when none was supplied.
	Message string
	// Value is the offending value, or the offending element for item kinds.
	Value any
	// Collection references (does not copy) the checked collection for
	// collection and item kinds.
	Collection any
	// Index is the position of the offending element for item kinds and All;
	// -1 otherwise.
	Index int

	cause error
}

// Class returns the propagation class of the violation.
func (v *Violation) Class() Class { return v.Kind.Class() }

// Error renders "<code>: <message>".
func (v *Violation) Error() string {
	if v.Message == "" {
		return v.Kind.String()
	}
	return v.Kind.String() + ": " + v.Message
}

// Unwrap exposes the kind sentinel, the parent kind sentinel (if any), the
// class sentinel and the underlying cause, so errors.Is can match a single
// contract or a whole class.
func (v *Violation) Unwrap() []error {
	out := make([]error, 0, 4)
	out = append(out, v.Kind.Sentinel())
	if p, ok := v.Kind.Parent(); ok {
		out = append(out, p.Sentinel())
	}
	out = append(out, v.Kind.Class().sentinel())
	if v.cause != nil {
		out = append(out, v.cause)
	}
	return out
}

type violationJSON struct {
	Code    string `json:"code"`
	Class   string `json:"class"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
	Index   *int   `json:"index,omitempty"`
}

// MarshalJSON encodes the violation for boundary reporting. The offending
// value is rendered textually.
func (v *Violation) MarshalJSON() ([]byte, error) {
	out := violationJSON{
		Code:    v.Kind.String(),
		Class:   v.Kind.Class().String(),
		Name:    v.Name,
		Message: v.Message,
	}
	if !isNil(v.Value) {
		out.Value = describe(v.Value)
	}
	if v.Index >= 0 {
		i := v.Index
		out.Index = &i
	}
	return json.Marshal(out)
}

// AsViolation extracts a Violation from an error using errors.As internally.
func AsViolation(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// KindOfError returns the Kind of the violation carried by err.
func KindOfError(err error) (Kind, bool) {
	v, ok := AsViolation(err)
	if !ok {
		return 0, false
	}
	return v.Kind, true
}

func constructionFailure(v *Violation) *Violation {
	return &Violation{
		Kind:    KindCustom,
		Name:    v.Name,
		Message: fmt.Sprintf("error factory for %s (%s) returned nil", v.Name, v.Kind),
		Value:   v.Value,
		Index:   -1,
		cause:   ErrConstruction,
	}
}
