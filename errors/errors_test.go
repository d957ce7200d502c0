package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidConfig, err.Code)
	}
	if err.Message != "bad" {
		t.Errorf("expected message 'bad', got %q", err.Message)
	}
}

func TestAppError_InvalidArgument_DefaultMessage(t *testing.T) {
	err := InvalidArgument("notNull", "")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "notNull") {
		t.Errorf("expected message naming the predicate, got %q", err.Message)
	}
	if err.Details["predicate"] != "notNull" {
		t.Errorf("expected predicate=notNull, got %v", err.Details["predicate"])
	}

	custom := InvalidArgument("notNull", "Null")
	if custom.Message != "Null" {
		t.Errorf("expected custom message, got %q", custom.Message)
	}
}

func TestAppError_InvalidType_Message(t *testing.T) {
	err := InvalidType("object", "string")
	want := "Expect: 'object' type, Actual: 'string' type"
	if err.Message != want {
		t.Errorf("expected %q, got %q", want, err.Message)
	}
}

func TestAppError_Canceled_Message(t *testing.T) {
	err := Canceled("DELETE", "/items/{id}")
	if err.Message != "Cancel Request: DELETE /items/{id}" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if !IsCanceled(err) {
		t.Error("expected IsCanceled=true")
	}
	if IsInvalidArgument(err) {
		t.Error("expected IsInvalidArgument=false")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InvalidConfig("settings").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := New(ErrCodeInvalidType, "x").WithDetail("k", "v")
	if err.Details["k"] != "v" {
		t.Errorf("expected k=v, got %v", err.Details["k"])
	}
}

func TestAppError_Predicates_Table(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", InvalidType("object", "int"))
	tests := []struct {
		name string
		err  error
		fn   func(error) bool
		want bool
	}{
		{"argument", InvalidArgument("mustObject", ""), IsInvalidArgument, true},
		{"type wrapped", wrapped, IsInvalidType, true},
		{"canceled", Canceled("GET", "/"), IsCanceled, true},
		{"plain error", fmt.Errorf("plain"), IsCanceled, false},
		{"nil", nil, IsInvalidArgument, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.err); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAsAppError_Success(t *testing.T) {
	appErr, ok := AsAppError(fmt.Errorf("wrap: %w", InvalidConfig("x")))
	if !ok || appErr.Code != ErrCodeInvalidConfig {
		t.Errorf("expected wrapped AppError, got %v %v", appErr, ok)
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected plain error not to convert")
	}
}
