package core

import (
	"errors"
	"testing"
)

// TestErrorWrapping verifies constructed errors match their sentinels
func TestErrorWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		check    func(error) bool
	}{
		{"empty input", NewEmptyInputError("mean"), ErrEmptyInput, IsEmptyInputError},
		{"insufficient data", NewInsufficientDataError("variance", 2, 1), ErrInsufficientData, IsInsufficientDataError},
		{"degenerate", NewDegenerateError("normal fit", "zero std"), ErrDegenerateDistribution, IsDegenerateError},
		{"invalid parameter", NewInvalidParameterError("q", "out of range"), ErrInvalidParameter, IsInvalidParameterError},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, tt.sentinel) {
			t.Errorf("%s: errors.Is failed for %v", tt.name, tt.err)
		}
		if !tt.check(tt.err) {
			t.Errorf("%s: helper check failed for %v", tt.name, tt.err)
		}
	}
}

// TestErrorHelpersRejectOtherErrors verifies helpers do not cross-match
func TestErrorHelpersRejectOtherErrors(t *testing.T) {
	err := NewEmptyInputError("mean")
	if IsInsufficientDataError(err) || IsDegenerateError(err) || IsInvalidParameterError(err) {
		t.Errorf("empty-input error matched an unrelated helper")
	}
}
