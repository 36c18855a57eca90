package errors

import (
	"strings"
	"testing"
)

func TestValidateEmployeeID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"numeric", "1", false},
		{"prefixed", "emp_42", false},
		{"uuid like", "3f2b9c1e-8a4d-4c1b-9d0e-2f6a7b8c9d0e", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"leading space", " 1", true},
		{"trailing space", "1 ", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmployeeID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmployeeID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidEmployee) {
				t.Errorf("ValidateEmployeeID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidEmployee)
			}
		})
	}
}

func TestValidateProgress(t *testing.T) {
	for _, p := range []int{0, 45, 100} {
		if err := ValidateProgress(p); err != nil {
			t.Errorf("ValidateProgress(%d) = %v, want nil", p, err)
		}
	}
	for _, p := range []int{-1, 101} {
		if err := ValidateProgress(p); err == nil {
			t.Errorf("ValidateProgress(%d) = nil, want error", p)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "roster.yaml", false},
		{"absolute", "/tmp/roster.yaml", false},
		{"nested", "data/hr/roster.json", false},

		{"empty", "", true},
		{"null byte", "roster\x00.yaml", true},
		{"control char", "roster\x01.yaml", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
