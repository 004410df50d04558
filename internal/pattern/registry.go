package pattern

import (
	"math/rand"

	"github.com/ninamew/catto/internal/colors"
)

// Entry pairs a selectable name with its pattern.
type Entry struct {
	Name    string
	Pattern Pattern
}

// Registry is the fixed, ordered list of patterns eligible for the
// random draw. Built once; read-only afterwards. Portraits and the
// heart overlay are deliberately absent.
type Registry struct {
	entries []Entry
}

// NewRegistry builds the candidate list.
func NewRegistry() *Registry {
	patterns := []Pattern{
		Solid(colors.Black),
		Solid(colors.White),
		Solid(colors.Orange),
		Solid(colors.Ginger),
		Solid(colors.Cream),
		Solid(colors.Gray),
		Solid(colors.Lilac),
		Solid(colors.Cinnamon),
		Solid(colors.Fawn),
		Solid(colors.Auburn),
		Bicolor(colors.Black, colors.White),
		Bicolor(colors.Orange, colors.White),
		Bicolor(colors.Gray, colors.White),
		Tabby(colors.Brown, colors.Chocolate),
		Tabby(colors.Orange, colors.DarkOrange),
		Tabby(colors.Gray, colors.DarkGray),
		Calico(),
		Tortoiseshell(),
		Tuxedo(),
		Colorpoint(colors.Chocolate, colors.Cream),
		Colorpoint(colors.DarkGray, colors.Fawn),
		Smoke(colors.Black),
		Smoke(colors.Gray),
		Smoke(colors.BlueGray),
	}

	entries := make([]Entry, 0, len(patterns))
	for _, p := range patterns {
		entries = append(entries, Entry{Name: p.Name, Pattern: p})
	}
	return &Registry{entries: entries}
}

// Entries returns the registry contents in order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of candidates.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Random draws one entry uniformly. Every entry has probability 1/N;
// there are no weights or exclusions.
func (r *Registry) Random(rng *rand.Rand) Entry {
	return r.entries[rng.Intn(len(r.entries))]
}

// Lookup finds a pattern by name across the registry, the portraits and
// the heart overlay.
func (r *Registry) Lookup(name string) (Pattern, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Pattern, true
		}
	}
	for _, p := range Portraits() {
		if p.Name == name {
			return p, true
		}
	}
	if h := HeartOverlay(); h.Name == name {
		return h, true
	}
	return Pattern{}, false
}
