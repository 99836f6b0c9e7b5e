package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "Bogus is not a field of Box")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "Bogus is not a field of Box" {
		t.Errorf("expected message 'Bogus is not a field of Box', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("reflect failure")
	ctx := map[string]interface{}{
		"type":  "Employee",
		"field": "Coolness",
	}

	err := WrapWithContext(ErrCodeAccessorMissing, "no constructor", cause, ctx)

	if err.Code != ErrCodeAccessorMissing {
		t.Errorf("expected code %s, got %s", ErrCodeAccessorMissing, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["field"] != "Coolness" {
		t.Errorf("expected field to be Coolness")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeMetadataMissing,
		ErrCodeTypeIncompatible,
		ErrCodeUnknownUnit,
		ErrCodeUnknownKind,
		ErrCodeConversionNotAllowed,
		ErrCodeAccessorMissing,
	}
	seen := make(map[ErrorCode]bool)

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "structured error",
			err:  New(ErrCodeMetadataMissing, "Unit metadata does not exist for Box.Priority."),
			want: ErrCodeMetadataMissing,
		},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("convert: %w", New(ErrCodeConversionNotAllowed, "nope")),
			want: ErrCodeConversionNotAllowed,
		},
		{
			name: "outermost code wins",
			err:  Wrap(ErrCodeConversionNotAllowed, "outer", New(ErrCodeUnknownUnit, "inner")),
			want: ErrCodeConversionNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("expected code %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeTypeIncompatible, "Blob.Data type of string is not compatible with units.QuantityValue.")
	if !IsCode(err, ErrCodeTypeIncompatible) {
		t.Errorf("expected IsCode to match %s", ErrCodeTypeIncompatible)
	}
	if IsCode(err, ErrCodeNotFound) {
		t.Errorf("expected IsCode not to match %s", ErrCodeNotFound)
	}
	if IsCode(nil, "") {
		t.Errorf("expected IsCode(nil) to be false")
	}
}
