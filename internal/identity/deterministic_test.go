package identity_test

import (
	"testing"

	"github.com/goliatone/go-sitegen/internal/identity"
	"github.com/google/uuid"
)

func TestUUIDDeterministic(t *testing.T) {
	a := identity.UUID("go-sitegen:project:lucky:lucky.example")
	b := identity.UUID("go-sitegen:project:lucky:lucky.example")
	if a != b {
		t.Fatalf("same key produced %s and %s", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("expected non-nil UUID")
	}
	if identity.UUID("  ") != uuid.Nil {
		t.Fatal("blank key should map to uuid.Nil")
	}
}

func TestPageSeedStablePerPage(t *testing.T) {
	a := identity.PageSeed("Lucky", "lucky.example", "Casino")
	b := identity.PageSeed("Lucky", "lucky.example", "Casino")
	if a != b {
		t.Fatalf("seed not stable: %d vs %d", a, b)
	}
	if a < 0 {
		t.Fatalf("seed should be non-negative, got %d", a)
	}
	if other := identity.PageSeed("Lucky", "lucky.example", "Games"); other == a {
		t.Fatal("different pages should get different seeds")
	}
}
