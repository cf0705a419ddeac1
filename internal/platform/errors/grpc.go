package errors

import (
	"errors"

	"github.com/louisbranch/yogastudio/internal/platform/errors/i18n"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultLocale is the default locale for error messages.
const DefaultLocale = "en-US"

// ToGRPCStatus converts the error to a gRPC status with errdetails.
// The status message carries the internal message; the LocalizedMessage
// detail carries userMessage.
func (e *Error) ToGRPCStatus(locale string, userMessage string) error {
	grpcCode := e.Code.GRPCCode()
	st, err := status.New(grpcCode, e.Message).WithDetails(
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
		&errdetails.LocalizedMessage{
			Locale:  locale,
			Message: userMessage,
		},
	)
	if err != nil {
		return status.New(grpcCode, e.Message).Err()
	}
	return st.Err()
}

// HandleError converts domain errors to a gRPC status for client responses.
// Unknown errors become Internal with a generic message.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.ToGRPCStatus(Localize(appErr, locale))
	}
	return status.Error(codes.Internal, "an unexpected error occurred")
}

// Localize renders the user-facing message for err in locale, falling back
// to en-US. It returns the locale that served the message.
func Localize(err *Error, locale string) (string, string) {
	if locale == "" {
		locale = DefaultLocale
	}
	catalog := i18n.GetCatalog(locale)
	return catalog.Locale(), catalog.Format(string(err.Code), err.Metadata)
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMetadata extracts metadata from an error if present.
func GetMetadata(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Metadata
	}
	return nil
}
