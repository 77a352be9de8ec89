package osrmc

import (
	"errors"
	"strings"
	"testing"

	"github.com/moviro-hub/libosrmc/osrm/json"
)

func TestErrorMessage(t *testing.T) {
	err := newError(CodeInvalidArgument, "Config cannot be null")
	for _, s := range []string{"InvalidArgument", "Config cannot be null"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("error message %q does not contain %q", err.Error(), s)
		}
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := newError(CodeNoRoute, "Impossible route between points")

	if !errors.Is(err, &Error{Code: CodeNoRoute}) {
		t.Error("Is should match same code")
	}
	if errors.Is(err, &Error{Code: CodeNoTable}) {
		t.Error("Is should not match different code")
	}
	if errors.Is(err, errors.New("NoRoute")) {
		t.Error("Is should not match a plain error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := errorFromGo(cause)

	if err.Code != CodeException {
		t.Fatalf("Expected Exception, got %s", err.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should stay reachable through the chain")
	}
}

func TestErrorFromGoPassesTypedThrough(t *testing.T) {
	typed := newError(CodeInvalidSnapping, "Unknown snapping type")
	if got := errorFromGo(typed); got != typed {
		t.Error("a typed error must pass through unchanged")
	}

	wrapped := errorFromGo(wrapError{typed})
	if wrapped != typed {
		t.Error("a wrapped typed error must unwrap to the original record")
	}
}

type wrapError struct{ inner error }

func (w wrapError) Error() string { return "wrapped: " + w.inner.Error() }
func (w wrapError) Unwrap() error { return w.inner }

func TestErrorFromPanic(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		code     Code
		contains string
	}{
		{name: "typed error", value: newError(CodeNoTable, "no table"), code: CodeNoTable, contains: "no table"},
		{name: "plain error", value: errors.New("boom"), code: CodeException, contains: "boom"},
		{name: "string", value: "index out of range", code: CodeException, contains: "index out of range"},
		{name: "integer", value: 42, code: CodeException, contains: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errorFromPanic(tt.value)
			if err.Code != tt.code {
				t.Fatalf("Expected code %s, got %s", tt.code, err.Code)
			}
			if !strings.Contains(err.Message, tt.contains) {
				t.Errorf("message %q does not contain %q", err.Message, tt.contains)
			}
		})
	}
}

func TestGuardConvertsPanic(t *testing.T) {
	run := func() (err error) {
		defer guard(&err)
		panic("engine exploded")
	}

	err := wantCode(t, run(), CodeException)
	if !strings.Contains(err.Message, "engine exploded") {
		t.Errorf("message %q does not carry the panic text", err.Message)
	}
}

func TestErrorFromDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *json.Object
		code    Code
		message string
	}{
		{
			name: "engine error report",
			doc: json.NewObject().
				Set("code", json.String("NoSegment")).
				Set("message", json.String("Could not find a matching segment")),
			code:    Code("NoSegment"),
			message: "Could not find a matching segment",
		},
		{
			name: "empty code reads as unknown",
			doc: json.NewObject().
				Set("code", json.String("")).
				Set("message", json.String("something went wrong")),
			code:    CodeUnknown,
			message: "something went wrong",
		},
		{
			name:    "missing members",
			doc:     json.NewObject(),
			code:    CodeException,
			message: "malformed error document",
		},
		{
			name: "wrong member type",
			doc: json.NewObject().
				Set("code", json.Number(404)).
				Set("message", json.String("nope")),
			code:    CodeException,
			message: "malformed error document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errorFromDocument(tt.doc)
			if err.Code != tt.code {
				t.Fatalf("Expected code %s, got %s", tt.code, err.Code)
			}
			if err.Message != tt.message {
				t.Fatalf("Expected message %q, got %q", tt.message, err.Message)
			}
		})
	}
}

func TestServiceError(t *testing.T) {
	err := serviceError("Tile")
	if err.Code != CodeTileError {
		t.Fatalf("Expected TileError, got %s", err.Code)
	}
	if err.Message != "Tile request failed" {
		t.Fatalf("Unexpected message %q", err.Message)
	}
}
