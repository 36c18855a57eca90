package main

import (
	"context"
	"fmt"
	"testing"

	orgerrors "github.com/matzehuels/orgchart/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"canceled", fmt.Errorf("render: %w", context.Canceled), 130},
		{"forbidden", orgerrors.New(orgerrors.ErrCodeForbidden, "role %q cannot view the chart", "guest"), 3},
		{"missing roster", orgerrors.New(orgerrors.ErrCodeFileNotFound, "roster.yaml"), 2},
		{"wrapped config", fmt.Errorf("load: %w", orgerrors.New(orgerrors.ErrCodeInvalidConfig, "bad key")), 2},
		{"plain", fmt.Errorf("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
