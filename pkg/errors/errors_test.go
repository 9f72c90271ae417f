package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDimension, "width must be positive, got %d", -3)

	if err.Code != ErrCodeInvalidDimension {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDimension)
	}

	if err.Message != "width must be positive, got -3" {
		t.Errorf("Message = %v, want %v", err.Message, "width must be positive, got -3")
	}

	expected := "INVALID_DIMENSION: width must be positive, got -3"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIOFailure, cause, "failed to save image")

	if err.Code != ErrCodeIOFailure {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIOFailure)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidEnum, "bad style"),
			code:     ErrCodeInvalidEnum,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidEnum, "bad style"),
			code:     ErrCodeUnknownCanvas,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeIOFailure, errors.New("io"), "save failed"),
			code:     ErrCodeIOFailure,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnknownCanvas, "no such canvas")); got != ErrCodeUnknownCanvas {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownCanvas)
	}

	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidGeometry, "scale must be positive")); got != "scale must be positive" {
		t.Errorf("UserMessage() = %v, want %v", got, "scale must be positive")
	}

	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain")
	}
}
