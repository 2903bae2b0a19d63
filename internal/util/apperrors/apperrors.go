package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"taskhive/internal/util/logger"

	"github.com/gin-gonic/gin"
)

// Kind classifies a failure so controllers can map it to an HTTP status
// without inspecting error message strings.
type Kind string

const (
	KindUnauthenticated  Kind = "UNAUTHENTICATED"
	KindForbidden        Kind = "FORBIDDEN"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindExpired          Kind = "EXPIRED"
	KindAlreadyProcessed Kind = "ALREADY_PROCESSED"
	KindSelfModification Kind = "SELF_MODIFICATION"
	KindSelfRemoval      Kind = "SELF_REMOVAL"
	KindValidation       Kind = "VALIDATION"
	KindInternal         Kind = "INTERNAL"
)

type Error struct {
	Kind        Kind
	Message     string
	FieldErrors map[string][]string
	cause       error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func Expired(message string) *Error {
	return New(KindExpired, message)
}

func AlreadyProcessed(message string) *Error {
	return New(KindAlreadyProcessed, message)
}

func SelfModification(message string) *Error {
	return New(KindSelfModification, message)
}

func SelfRemoval(message string) *Error {
	return New(KindSelfRemoval, message)
}

func Validation(message string, fieldErrors map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: message, FieldErrors: fieldErrors}
}

// Internal wraps an unexpected failure. The cause is kept for logging at the
// boundary but is never sent to the caller.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}

func Internalf(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf returns the kind of err, or KindInternal for anything that is not
// an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func httpStatus(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindAlreadyProcessed:
		return http.StatusConflict
	case KindExpired:
		return http.StatusGone
	case KindSelfModification, KindSelfRemoval, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error response. Internal errors are logged
// with their cause and replaced with a generic message so that store or
// stack detail never reaches the caller.
func Respond(ctx *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("An unexpected error occurred. Please try again later.", err)
	}

	if appErr.Kind == KindInternal {
		logger.GetLogger().Error(
			"internal error",
			"message", appErr.Message,
			"error", appErr.cause,
			"path", ctx.FullPath(),
		)

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "An unexpected error occurred. Please try again later.",
		})
		return
	}

	body := gin.H{"error": appErr.Message}
	if len(appErr.FieldErrors) > 0 {
		body["fieldErrors"] = appErr.FieldErrors
	}

	ctx.JSON(httpStatus(appErr.Kind), body)
}
