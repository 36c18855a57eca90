package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidRoster, cause, "failed to decode")

	if err.Code != ErrCodeInvalidRoster {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRoster)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_ROSTER: failed to decode: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
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
			err:      New(ErrCodeDuplicateID, "test"),
			code:     ErrCodeDuplicateID,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeDuplicateID,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidRoster, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidRoster,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidStatus, "test"),
			expected: ErrCodeInvalidStatus,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var l List
		l.Add(nil)
		if l.Err() != nil {
			t.Errorf("Err() = %v, want nil", l.Err())
		}
	})

	t.Run("single", func(t *testing.T) {
		var l List
		l.Add(New(ErrCodeDuplicateID, "duplicate employee id %q", "1"))
		if got, want := l.Error(), `DUPLICATE_ID: duplicate employee id "1"`; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("multiple keeps codes reachable", func(t *testing.T) {
		var l List
		l.Add(New(ErrCodeInvalidStatus, "bad status"))
		l.Add(New(ErrCodeDuplicateID, "dup"))
		err := l.Err()
		if err == nil {
			t.Fatal("Err() = nil, want error")
		}
		if got, want := err.Error(), "INVALID_STATUS: bad status (and 1 more)"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !Is(err, ErrCodeInvalidStatus) {
			t.Error("Is(err, ErrCodeInvalidStatus) = false, want true")
		}
	})
}
