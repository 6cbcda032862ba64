package common

import "testing"

func TestCreateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Roofing & Siding", "acme-roofing-siding"},
		{"  Joe's   Plumbing  ", "joes-plumbing"},
		{"---", "business-profile"},
		{"", "business-profile"},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tc := range cases {
		if got := CreateSlug(tc.in); got != tc.want {
			t.Fatalf("CreateSlug(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestValidateSiteSlugRejectsReserved(t *testing.T) {
	for _, reserved := range []string{"admin", "api", "assets"} {
		if _, ok, msg := ValidateSiteSlug(reserved); ok || msg == "" {
			t.Fatalf("reserved slug %q was accepted", reserved)
		}
	}
	slug, ok, msg := ValidateSiteSlug("Acme Roofing")
	if !ok || msg != "" {
		t.Fatalf("valid slug rejected: %q %q", slug, msg)
	}
	if slug != "acme-roofing" {
		t.Fatalf("want normalized slug acme-roofing, got %q", slug)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \n\t b  "); got != "a b" {
		t.Fatalf("want %q, got %q", "a b", got)
	}
}
