// Package structcheck runs go-playground/validator struct tags as guard
// checks. The first failing field is reported as a single violation.
package structcheck

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reoring/guard"
)

// Validator wraps a validator.Validate with the tags registered by this
// package.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. It registers the not_whitespace tag, which
// rejects strings made only of white space.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("not_whitespace", notWhitespace); err != nil {
		panic(fmt.Sprintf("structcheck: registering not_whitespace: %v", err))
	}
	return &Validator{validate: v}
}

// Engine exposes the underlying validator so callers can register their own
// tags.
func (v *Validator) Engine() *validator.Validate { return v.validate }

var defaultValidator = New()

// Default returns the shared Validator used by Valid and Var.
func Default() *Validator { return defaultValidator }

func notWhitespace(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

// Valid validates the struct (or pointer to struct) v against its validate
// tags. A nil v reports KindNullNotAllowed, a non-struct KindTypeMismatch and
// a failing field KindStateInvalid named after the field's namespace.
func Valid[T any](v T, opts ...guard.Option) (T, error) {
	return ValidWith(defaultValidator, v, opts...)
}

// ValidWith is Valid using val.
func ValidWith[T any](val *Validator, v T, opts ...guard.Option) (T, error) {
	return check(val, v, guard.KindStateInvalid, opts)
}

// Input is Valid for values a caller hands in, such as a decoded request
// body. A failing field is an argument violation (KindOutOfRange) rather
// than KindStateInvalid.
func Input[T any](v T, opts ...guard.Option) (T, error) {
	return InputWith(defaultValidator, v, opts...)
}

// InputWith is Input using val.
func InputWith[T any](val *Validator, v T, opts ...guard.Option) (T, error) {
	return check(val, v, guard.KindOutOfRange, opts)
}

func check[T any](val *Validator, v T, kind guard.Kind, opts []guard.Option) (T, error) {
	var zero T
	if _, err := guard.NotNil(v, opts...); err != nil {
		return zero, err
	}
	err := val.validate.Struct(v)
	if err == nil {
		return v, nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return zero, guard.Fail(guard.KindTypeMismatch, v, prepend(opts,
			guard.MessageFunc(func(any) string {
				return fmt.Sprintf("%T is not a struct", v)
			}),
		)...)
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		fe := fields[0]
		return zero, guard.Fail(kind, fe.Value(), prepend(opts,
			guard.Name(fe.Namespace()),
			guard.MessageFunc(func(any) string { return describeField(fe) }),
		)...)
	}
	return zero, guard.Fail(kind, v, prepend(opts,
		guard.MessageFunc(func(any) string { return err.Error() }),
	)...)
}

// Var validates a single value against a validator tag expression such as
// "min=1,max=10" and reports KindOutOfRange when it fails. Malformed tags
// panic, as they do in validator.
func Var[T any](v T, tag string, opts ...guard.Option) (T, error) {
	return VarWith(defaultValidator, v, tag, opts...)
}

// VarWith is Var using val.
func VarWith[T any](val *Validator, v T, tag string, opts ...guard.Option) (T, error) {
	err := val.validate.Var(v, tag)
	if err == nil {
		return v, nil
	}
	var zero T
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		fe := fields[0]
		return zero, guard.Fail(guard.KindOutOfRange, v, prepend(opts,
			guard.MessageFunc(func(any) string {
				return fmt.Sprintf("value %v failed on the '%s' rule", fe.Value(), ruleOf(fe))
			}),
		)...)
	}
	return zero, guard.Fail(guard.KindOutOfRange, v, opts...)
}

// prepend puts defaults ahead of the caller's options so the caller's
// options win.
func prepend(opts []guard.Option, defaults ...guard.Option) []guard.Option {
	return append(defaults, opts...)
}

func describeField(fe validator.FieldError) string {
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Namespace(), ruleOf(fe))
}

func ruleOf(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
