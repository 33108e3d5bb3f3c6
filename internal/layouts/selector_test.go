package layouts_test

import (
	"testing"

	"github.com/goliatone/go-sitegen/internal/layouts"
)

func TestSelectPinnedLayouts(t *testing.T) {
	cases := []struct {
		page string
		want layouts.Layout
	}{
		{"Casino", layouts.CasinoHome},
		{"home", layouts.CasinoHome},
		{"Games", layouts.CasinoGames},
		{"Mobile App", layouts.CasinoApp},
		{"Aviator", layouts.CasinoAviator},
		{"Login", layouts.CasinoLogin},
		{"FAQ", layouts.Accordion},
		{"Contact", layouts.ContactCards},
	}
	for _, tc := range cases {
		if got := layouts.Select(tc.page, 0, 1, 99); got != tc.want {
			t.Fatalf("page %q: expected %s got %s", tc.page, tc.want, got)
		}
	}
}

func TestSelectFallbackDeterministic(t *testing.T) {
	first := layouts.Select("UnknownPage", 2, 7, 1000)
	second := layouts.Select("UnknownPage", 2, 7, 1000)
	if first != second {
		t.Fatalf("same inputs gave %s then %s", first, second)
	}
}

func TestSelectFallbackVariesByIndex(t *testing.T) {
	a := layouts.Select("Mystery", 0, 3, 5)
	b := layouts.Select("Mystery", 1, 3, 5)
	if a == b {
		t.Fatalf("adjacent unknown pages landed on the same layout %s", a)
	}
}
