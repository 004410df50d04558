package pattern

import (
	"math/rand"
	"strings"
	"testing"
)

var familyPrefixes = []string{
	"solid_", "bicolor_", "tabby_", "calico",
	"tortoiseshell", "tuxedo", "colorpoint_", "smoke_",
}

func hasKnownPrefix(name string) bool {
	for _, p := range familyPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func TestRandomVariety(t *testing.T) {
	reg := NewRegistry()
	rng := rand.New(rand.NewSource(1))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e := reg.Random(rng)
		seen[e.Name] = true
		if !hasKnownPrefix(e.Name) {
			t.Fatalf("Random() returned %q, not a known family", e.Name)
		}
		if e.Name != e.Pattern.Name {
			t.Fatalf("entry name %q != pattern name %q", e.Name, e.Pattern.Name)
		}
	}
	if len(seen) < 3 {
		t.Errorf("100 draws produced only %d distinct patterns", len(seen))
	}
}

func TestPortraitsNotInPool(t *testing.T) {
	reg := NewRegistry()

	excluded := make(map[string]bool)
	for _, p := range Portraits() {
		excluded[p.Name] = true
	}
	excluded[HeartOverlay().Name] = true

	for _, e := range reg.Entries() {
		if excluded[e.Name] {
			t.Errorf("%q is in the random pool but should only be explicit", e.Name)
		}
		if !hasKnownPrefix(e.Name) {
			t.Errorf("pool entry %q has no family prefix", e.Name)
		}
	}
}

func TestEntriesAreACopy(t *testing.T) {
	reg := NewRegistry()
	entries := reg.Entries()
	entries[0].Name = "tampered"

	if reg.Entries()[0].Name == "tampered" {
		t.Error("Entries() exposes the registry's backing slice")
	}
}

func TestLookup(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"calico", "solid_orange", "jennycatto", "iggy", "heart"} {
		p, ok := reg.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", name)
			continue
		}
		if p.Name != name {
			t.Errorf("Lookup(%q) returned %q", name, p.Name)
		}
	}

	if _, ok := reg.Lookup("doggo"); ok {
		t.Error("Lookup(doggo) should fail")
	}
}
