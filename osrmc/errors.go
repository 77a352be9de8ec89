package osrmc

import (
	"errors"
	"fmt"

	"github.com/moviro-hub/libosrmc/osrm/json"
)

// Code classifies a failure reported through an Error record.
type Code string

const (
	// CodeException marks a reified engine panic or an internal translation
	// failure; the message carries whatever detail was available.
	CodeException Code = "Exception"
	// CodeUnknown stands in for an engine error document whose code member
	// is empty.
	CodeUnknown Code = "Unknown"

	CodeInvalidArgument        Code = "InvalidArgument"
	CodeInvalidCoordinateIndex Code = "InvalidCoordinateIndex"
	CodeInvalidSnapping        Code = "InvalidSnapping"
	CodeInvalidFormat          Code = "InvalidFormat"
	CodeInvalidAlgorithm       Code = "InvalidAlgorithm"
	CodeInvalidDataset         Code = "InvalidDataset"
	CodeInvalidExclude         Code = "InvalidExclude"
	CodeInvalidGeometry        Code = "InvalidGeometry"
	CodeInvalidResponse        Code = "InvalidResponse"

	// CodeUnsupportedFormat is retained for callers written against older
	// revisions, which rejected the binary output format before dispatch.
	// Current dispatchers accept every format and no longer produce it.
	CodeUnsupportedFormat Code = "UnsupportedFormat"

	// CodeMemoryError marks an allocation failure while copying a buffer
	// out to the caller.
	CodeMemoryError Code = "MemoryError"

	// Response accessor codes.
	CodeIndexOutOfBounds Code = "IndexOutOfBounds"
	CodeNoGeometry       Code = "NoGeometry"
	CodeNoPolyline       Code = "NoPolyline"
	CodeNoTable          Code = "NoTable"
	CodeNoRoute          Code = "NoRoute"
	CodeNoConfidence     Code = "NoConfidence"
	CodeNoHint           Code = "NoHint"
	CodeNullTracepoint   Code = "NullTracepoint"
	CodeBufferTooSmall   Code = "BufferTooSmall"

	// Per-service fallback codes, produced when a service fails without
	// leaving a structured error document behind.
	CodeRouteError   Code = "RouteError"
	CodeTableError   Code = "TableError"
	CodeMatchError   Code = "MatchError"
	CodeNearestError Code = "NearestError"
	CodeTripError    Code = "TripError"
	CodeTileError    Code = "TileError"
)

// Error is the failure record every binding operation reports.
type Error struct {
	Code    Code
	Message string

	// Cause keeps the originating Go error, if any, reachable for
	// errors.Is/errors.As chains.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// errorFromGo reifies an arbitrary error as an Exception record, keeping the
// original in the cause chain. An *Error passes through unchanged.
func errorFromGo(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return &Error{Code: CodeException, Message: err.Error(), Cause: err}
}

// errorFromPanic reifies a recovered panic value as an Exception record.
func errorFromPanic(v any) *Error {
	switch e := v.(type) {
	case *Error:
		return e
	case error:
		return &Error{Code: CodeException, Message: e.Error(), Cause: e}
	default:
		return &Error{Code: CodeException, Message: fmt.Sprint(v)}
	}
}

// guard is the panic boundary applied to every call that runs engine or
// caller code. Deferred with the callee's named error, it converts an
// escaping panic into a CodeException record.
func guard(err *error) {
	if r := recover(); r != nil {
		*err = errorFromPanic(r)
	}
}

// errorFromDocument translates an engine error document into a record. The
// document carries string members "code" and "message"; an empty code reads
// as CodeUnknown. A document missing either member, or carrying the wrong
// shape, fails the translation itself and yields an Exception record.
func errorFromDocument(doc *json.Object) *Error {
	code, okCode := doc.GetString("code")
	message, okMessage := doc.GetString("message")
	if !okCode || !okMessage {
		return newError(CodeException, "malformed error document")
	}
	if code == "" {
		return newError(CodeUnknown, message)
	}
	return newError(Code(code), message)
}

// serviceError is the fallback record for a failed service call that left no
// structured error document behind.
func serviceError(service string) *Error {
	return newError(Code(service+"Error"), service+" request failed")
}
