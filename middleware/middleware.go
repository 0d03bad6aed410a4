// Package middleware exposes guard violations at net/http boundaries:
// status mapping, a JSON error payload, recovery of guard.Must panics and a
// JSON body binder that runs structcheck before the handler.
package middleware

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/reoring/guard"
	"github.com/reoring/guard/structcheck"
)

// ctxKeyChecked is a typed context key for storing a checked T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyChecked[T any] struct{}

// ContextWithChecked attaches a checked value to the context.
func ContextWithChecked[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyChecked[T]{}, v)
}

// CheckedFromContext retrieves a value stored by ContextWithChecked or
// ValidateJSON.
func CheckedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyChecked[T]{}).(T)
	return v, ok
}

// StatusCode maps a violation class onto an HTTP status: argument
// violations are 400, state violations 409 and anything else 500.
func StatusCode(err error) int {
	v, ok := guard.AsViolation(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch v.Class() {
	case guard.ClassArgument:
		return http.StatusBadRequest
	case guard.ClassState:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ErrorPayload shapes err for JSON responses. Violations are encoded with
// their code, class, name and message; other errors only carry their text.
func ErrorPayload(err error) map[string]any {
	if v, ok := guard.AsViolation(err); ok {
		return map[string]any{"violation": v}
	}
	return map[string]any{"error": err.Error()}
}

// WriteError writes err as a JSON response with the status from StatusCode.
func WriteError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusCode(err), ErrorPayload(err))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// Recover converts panics carrying a violation (guard.Must, guard.MustOK)
// into JSON error responses. Other panics are re-raised.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				panic(rec)
			}
			if _, ok := guard.AsViolation(err); !ok {
				panic(rec)
			}
			WriteError(w, err)
		}()
		next.ServeHTTP(w, r)
	})
}

// ValidateJSON decodes the request body into T, checks it with
// structcheck.Input and stores it in the request context for next. A body
// that is not valid JSON for T is rejected with a TypeMismatch violation.
func ValidateJSON[T any](next http.Handler, opts ...guard.Option) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var v T
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			WriteError(w, guard.Fail(guard.KindTypeMismatch, nil, append([]guard.Option{
				guard.Name("body"),
				guard.Message(fmt.Sprintf("request body is not a valid %T: %v", v, err)),
			}, opts...)...))
			return
		}
		if _, err := structcheck.Input(v, opts...); err != nil {
			WriteError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithChecked(r.Context(), v)))
	})
}
