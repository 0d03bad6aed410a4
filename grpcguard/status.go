// Package grpcguard maps guard violations onto gRPC statuses at service
// boundaries: argument violations become InvalidArgument, state violations
// FailedPrecondition and assertion failures Internal.
package grpcguard

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reoring/guard"
)

// ErrorDomain is the ErrorInfo domain attached to assertion failures.
const ErrorDomain = "guard"

// Code returns the gRPC code for err. Errors that carry no violation map to
// codes.Unknown, unless they already are gRPC statuses.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	v, ok := guard.AsViolation(err)
	if !ok {
		return status.Code(err)
	}
	return classCode(v.Class())
}

func classCode(c guard.Class) codes.Code {
	switch c {
	case guard.ClassArgument:
		return codes.InvalidArgument
	case guard.ClassState:
		return codes.FailedPrecondition
	}
	return codes.Internal
}

// Status converts err into a gRPC status. Violations get a status with the
// violation message and a detail describing it: BadRequest for argument
// violations, PreconditionFailure for state violations and ErrorInfo for
// assertion failures. Other errors go through status.Convert.
func Status(err error) *status.Status {
	v, ok := guard.AsViolation(err)
	if !ok {
		return status.Convert(err)
	}
	st := status.New(classCode(v.Class()), err.Error())
	var withDetails *status.Status
	var derr error
	switch v.Class() {
	case guard.ClassArgument:
		withDetails, derr = st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{{
				Field:       v.Name,
				Description: v.Message,
			}},
		})
	case guard.ClassState:
		withDetails, derr = st.WithDetails(&errdetails.PreconditionFailure{
			Violations: []*errdetails.PreconditionFailure_Violation{{
				Type:        v.Kind.String(),
				Subject:     v.Name,
				Description: v.Message,
			}},
		})
	default:
		withDetails, derr = st.WithDetails(&errdetails.ErrorInfo{
			Reason:   v.Kind.String(),
			Domain:   ErrorDomain,
			Metadata: map[string]string{"name": v.Name},
		})
	}
	if derr != nil {
		return st
	}
	return withDetails
}
