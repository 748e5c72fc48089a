package domain

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Acme Robotics", "acme-robotics"},
		{"  Yassir!  ", "yassir"},
		{"Temtem One", "temtem-one"},
		{"El-Djazaïr Hub", "el-djaza-r-hub"},
		{"42 North", "42-north"},
		{"???", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q): want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestNewEntitySlug(t *testing.T) {
	slug := NewEntitySlug("Acme Robotics")
	if !strings.HasPrefix(slug, "acme-robotics-") {
		t.Fatalf("want prefix acme-robotics-, got %q", slug)
	}
	if got := len(slug); got != len("acme-robotics-")+4 {
		t.Fatalf("want 4-char suffix, got %q", slug)
	}
}

func TestNewEntitySlugEmptyNameFallsBack(t *testing.T) {
	slug := NewEntitySlug("!!!")
	if !strings.HasPrefix(slug, "entity-") {
		t.Fatalf("want prefix entity-, got %q", slug)
	}
}

func TestSlugSuffixAlphabet(t *testing.T) {
	s := SlugSuffix(64)
	if len(s) != 64 {
		t.Fatalf("want 64 chars, got %d", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(suffixAlphabet, r) {
			t.Fatalf("suffix char %q outside alphabet", r)
		}
	}
}
