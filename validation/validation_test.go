package validation

import (
	"net/url"
	"strings"
	"testing"

	"github.com/kbukum/apiclient/errors"
)

type sample struct {
	Name string
}

func TestIsObject(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *sample
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"map", map[string]any{"a": 1}, true},
		{"string map", map[string]string{}, true},
		{"url values", url.Values{"a": {"1"}}, true},
		{"struct", sample{}, true},
		{"struct pointer", &sample{}, true},
		{"nil map", nilMap, true},
		{"nil pointer", nilPtr, false},
		{"int keyed map", map[int]string{}, false},
		{"string", "abc", false},
		{"int", 3, false},
		{"slice", []string{"a"}, false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsObject(tc.v); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNotNull(t *testing.T) {
	var nilPtr *sample
	if err := NotNull(nil); !errors.IsInvalidArgument(err) {
		t.Errorf("expected ArgumentError for nil, got %v", err)
	}
	if err := NotNull(nilPtr); !errors.IsInvalidArgument(err) {
		t.Errorf("expected ArgumentError for typed nil, got %v", err)
	}
	err := NotNull(nil, "Null")
	if err == nil || !strings.Contains(err.Error(), "Null") {
		t.Errorf("expected custom message, got %v", err)
	}
	if err := NotNull(0); err != nil {
		t.Errorf("expected zero value to pass, got %v", err)
	}
}

func TestNotEmptyString(t *testing.T) {
	for _, v := range []any{nil, "", []string{}, 5} {
		if err := NotEmptyString(v); !errors.IsInvalidArgument(err) {
			t.Errorf("expected ArgumentError for %#v, got %v", v, err)
		}
	}
	err := NotEmptyString(nil, "Empty")
	if err == nil || !strings.Contains(err.Error(), "Empty") {
		t.Errorf("expected custom message, got %v", err)
	}
	if err := NotEmptyString("x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNotEmptyObject(t *testing.T) {
	if err := NotEmptyObject(map[string]any{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, v := range []any{nil, "x", 1} {
		if err := NotEmptyObject(v); !errors.IsInvalidArgument(err) {
			t.Errorf("expected ArgumentError for %#v, got %v", v, err)
		}
	}
}

func TestMustObject(t *testing.T) {
	if err := MustObject(nil); err != nil {
		t.Errorf("expected nil to pass, got %v", err)
	}
	if err := MustObject(sample{Name: "a"}); err != nil {
		t.Errorf("expected struct to pass, got %v", err)
	}
	err := MustObject("abc")
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Argument must be object type") {
		t.Errorf("expected default message, got %q", err.Error())
	}
}

type settings struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	Format  string `mapstructure:"format" validate:"required,oneof=json console"`
}

func TestStructValidateValid(t *testing.T) {
	if err := Validate(settings{BaseURL: "https://api.example.com", Format: "json"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	err := Validate(settings{BaseURL: "not a url", Format: "xml"})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "base_url: must be a valid URL") {
		t.Errorf("expected base_url message, got %q", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "format: must be one of") {
		t.Errorf("expected format message, got %q", appErr.Message)
	}
	fields, _ := appErr.Details["fields"].([]FieldError)
	if len(fields) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(fields))
	}
}
