// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Value errors
	CodeInvalidLength            Code = "INVALID_LENGTH"
	CodePersonConstructionFailed Code = "PERSON_CONSTRUCTION_FAILED"

	// Enumeration errors
	CodeUnknownClassKind    Code = "UNKNOWN_CLASS_KIND"
	CodeUnknownWorkshopKind Code = "UNKNOWN_WORKSHOP_KIND"

	// Duration errors
	CodeInvalidTimedRange Code = "INVALID_TIMED_RANGE"
	CodeDateTooEarly      Code = "DATE_TOO_EARLY"

	// Intake errors
	CodeUnknownEventKind   Code = "UNKNOWN_EVENT_KIND"
	CodeUnknownTeacherRole Code = "UNKNOWN_TEACHER_ROLE"
	CodeInvalidTimestamp   Code = "INVALID_TIMESTAMP"
	CodeAmbiguousDuration  Code = "AMBIGUOUS_DURATION"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeInvalidLength,
		CodePersonConstructionFailed,
		CodeUnknownClassKind,
		CodeUnknownWorkshopKind,
		CodeInvalidTimedRange,
		CodeDateTooEarly,
		CodeUnknownEventKind,
		CodeUnknownTeacherRole,
		CodeInvalidTimestamp,
		CodeAmbiguousDuration:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}
