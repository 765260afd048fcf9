package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	if first == second {
		t.Error("expected distinct identifiers")
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("expected a parseable UUID, got %q: %v", first, err)
	}
}
