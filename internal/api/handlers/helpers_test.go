package handlers_test

import (
	"testing"

	"github.com/google/uuid"
)

func uuidMustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()

	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", s, err)
	}
	return id
}
