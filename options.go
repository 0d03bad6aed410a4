package guard

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reoring/guard/i18n"
)

// Option customizes the violation a check reports. Options are only
// resolved after a check has failed, so passing them costs nothing on the
// success path and no factory runs unless a contract is broken.
type Option func(*settings)

type settings struct {
	name      string
	message   string
	messageFn func(value any) string
	itemFn    func(item any) string
	errFn     func(*Violation) error
}

// Name sets the subject name reported by the violation.
func Name(name string) Option { return func(s *settings) { s.name = name } }

// Message sets an explicit message. It always wins over factories and the
// kind's default template.
func Message(msg string) Option { return func(s *settings) { s.message = msg } }

// MessageFunc sets a factory invoked with the offending value once a
// single-value check has failed. Its result is used verbatim.
func MessageFunc(fn func(value any) string) Option {
	return func(s *settings) { s.messageFn = fn }
}

// ItemMessageFunc sets a factory invoked with the offending element once a
// sequence check has failed on it. Its result is used verbatim.
func ItemMessageFunc(fn func(item any) string) Option {
	return func(s *settings) { s.itemFn = fn }
}

// WithError replaces the returned *Violation with the error produced by fn.
// fn receives the fully resolved violation. A nil result is reported as a
// KindCustom violation wrapping ErrConstruction.
func WithError(fn func(*Violation) error) Option {
	return func(s *settings) { s.errFn = fn }
}

func resolve(opts []Option) settings {
	var s settings
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}
	if s.name == "" {
		s.name = UnknownName
	}
	return s
}

// failure describes a failed check before options are applied.
type failure struct {
	kind       Kind
	value      any
	collection any
	index      int
	item       bool
	data       map[string]string
	cause      error
}

// Fail builds the error for a failed contract of the given kind, applying
// opts exactly as the built-in checks do. It is meant for wrappers that
// implement their own checks on top of this package's taxonomy.
func Fail(kind Kind, value any, opts ...Option) error {
	return fail(opts, failure{kind: kind, value: value, index: -1})
}

func fail(opts []Option, f failure) error {
	s := resolve(opts)
	v := &Violation{
		Kind:       f.kind,
		Name:       s.name,
		Value:      f.value,
		Collection: f.collection,
		Index:      f.index,
		cause:      f.cause,
	}
	switch {
	case s.message != "":
		v.Message = s.message
	case f.item && s.itemFn != nil:
		v.Message = s.itemFn(f.value)
	case !f.item && s.messageFn != nil:
		v.Message = s.messageFn(f.value)
	default:
		v.Message = defaultMessage(v, f.data)
		if f.cause != nil {
			v.Message += " (" + f.cause.Error() + ")"
		}
	}
	if s.errFn == nil {
		return v
	}
	if err := s.errFn(v); !isNil(err) {
		return err
	}
	return constructionFailure(v)
}

func defaultMessage(v *Violation, extra map[string]string) string {
	data := map[string]string{
		"name":  v.Name,
		"value": describe(v.Value),
		"type":  typeName(v.Value),
		"index": strconv.Itoa(v.Index),
	}
	for k, val := range extra {
		data[k] = val
	}
	return i18n.T(v.Kind.String(), data)
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		if isNil(v) {
			return "<nil>"
		}
		return x.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return "&" + describe(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", v)
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
