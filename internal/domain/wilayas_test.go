package domain

import "testing"

func TestWilayaTableComplete(t *testing.T) {
	if len(WilayaTable) != 58 {
		t.Fatalf("want 58 wilayas, got %d", len(WilayaTable))
	}
	seen := map[string]bool{}
	for _, w := range WilayaTable {
		if seen[w.Slug] {
			t.Fatalf("duplicate slug %q", w.Slug)
		}
		seen[w.Slug] = true
	}
}

func TestResolveWilayaName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Oran", "Oran", true},
		{"oran", "Oran", true},
		{"  ALGIERS ", "Algiers", true},
		{"tizi-ouzou", "Tizi Ouzou", true},
		{"Atlantis", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ResolveWilayaName(c.in)
		if ok != c.ok {
			t.Fatalf("ResolveWilayaName(%q): want ok=%v, got %v", c.in, c.ok, ok)
		}
		if ok && got.Name != c.want {
			t.Fatalf("ResolveWilayaName(%q): want %q, got %q", c.in, c.want, got.Name)
		}
	}
}

func TestKindRules(t *testing.T) {
	if !TypeAllowsCategories(TypeStartup) {
		t.Fatalf("startups should carry categories")
	}
	if TypeAllowsCategories(TypeIncubator) {
		t.Fatalf("incubators should not carry categories")
	}
	if !TypeAllowsMediaTypes(TypeMedia) {
		t.Fatalf("media should carry media types")
	}
	if TypeAllowsMediaTypes(TypeStartup) {
		t.Fatalf("startups should not carry media types")
	}
}
