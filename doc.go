// Package guard provides runtime contract checks: preconditions on
// arguments, invariants on state, assertions, and single-pass checks over
// collections and iterators.
//
// - Every check returns its input unchanged (same reference, no copy) or an error
// - A stable error model via *Violation (Kind, Class, subject name, message)
// - Diagnostic-only mirrors of every check live in package optional
// - Struct-tag validation lives in structcheck, gRPC mapping in grpcguard
//
// Design policy:
//   - Fail fast: one violation per call, nothing is logged or aggregated here.
//   - Options (names, messages, factories) are resolved only after a check fails.
//   - Callers catch narrowly with errors.Is(err, guard.ErrEmptyNotAllowed) or
//     broadly with errors.Is(err, guard.ErrArgument).
//
// Typical usage:
//
//	func NewOrder(id string, lines []Line) (*Order, error) {
//		if _, err := guard.NotWhitespace(id, guard.Name("id")); err != nil {
//			return nil, err
//		}
//		if _, err := guard.NotNullNotEmpty(lines, guard.Name("lines")); err != nil {
//			return nil, err
//		}
//		...
//	}
//
//	qty := guard.Must(guard.Between(qty, 1, 100, guard.Name("qty")))
package guard
