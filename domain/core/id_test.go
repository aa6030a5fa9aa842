package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestParseSweepID tests sweep ID parsing
func TestParseSweepID(t *testing.T) {
	tests := []struct {
		input    string
		expected SweepID
		hasError bool
	}{
		{"valid-id", SweepID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSweepID(tt.input)
		if tt.hasError {
			if err == nil {
				t.Errorf("ParseSweepID(%q): expected error, got none", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSweepID(%q): unexpected error %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseSweepID(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
