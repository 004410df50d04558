package render

import (
	"strings"
	"testing"

	"github.com/ninamew/catto/internal/art"
	"github.com/ninamew/catto/internal/colors"
	"github.com/ninamew/catto/internal/pattern"
)

// everyPattern returns the random pool, the portraits and the heart
// overlay.
func everyPattern() []pattern.Pattern {
	var out []pattern.Pattern
	for _, e := range pattern.NewRegistry().Entries() {
		out = append(out, e.Pattern)
	}
	out = append(out, pattern.Portraits()...)
	out = append(out, pattern.HeartOverlay())
	return out
}

func mustCatto(t *testing.T) string {
	t.Helper()
	text, err := art.Catto()
	if err != nil {
		t.Fatalf("Catto() failed: %v", err)
	}
	return text
}

func mustHeart(t *testing.T) string {
	t.Helper()
	text, err := art.Heart()
	if err != nil {
		t.Fatalf("Heart() failed: %v", err)
	}
	return text
}

func TestRoundTripAllPatterns(t *testing.T) {
	table := colors.NewTable()
	inputs := map[string]string{
		"catto":     mustCatto(t),
		"heart":     mustHeart(t),
		"empty":     "",
		"irregular": "ab cd\n\n\t x\n  \n.#.\n",
	}

	for _, p := range everyPattern() {
		for label, in := range inputs {
			out, err := Colorize(in, p, table)
			if err != nil {
				t.Fatalf("%s on %s failed: %v", p.Name, label, err)
			}
			if got := Strip(out); got != in {
				t.Errorf("%s on %s does not round-trip", p.Name, label)
			}
		}
	}
}

func TestWhitespaceNeverColored(t *testing.T) {
	table := colors.NewTable()
	in := "ab cd\n\te f  g\n   \nhh\n"

	for _, p := range everyPattern() {
		out, err := Colorize(in, p, table)
		if err != nil {
			t.Fatalf("%s failed: %v", p.Name, err)
		}
		assertNoColoredWhitespace(t, p.Name, out)
	}
}

// assertNoColoredWhitespace walks s and fails if a space or tab shows
// up between a color code and the following reset.
func assertNoColoredWhitespace(t *testing.T, name, s string) {
	t.Helper()
	inRun := false
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := strings.IndexByte(s[i:], 'm')
			if end < 0 {
				t.Fatalf("%s: unterminated escape sequence", name)
			}
			inRun = s[i:i+end+1] != string(colors.Reset)
			i += end + 1
			continue
		}
		if inRun && (s[i] == ' ' || s[i] == '\t') {
			t.Fatalf("%s: whitespace inside a colored run", name)
		}
		i++
	}
}

func TestSolidOrangeOnCatto(t *testing.T) {
	table := colors.NewTable()
	in := mustCatto(t)

	out, err := Colorize(in, pattern.Solid(colors.Orange), table)
	if err != nil {
		t.Fatalf("Colorize failed: %v", err)
	}
	if got := Strip(out); got != in {
		t.Fatal("stripped output differs from the asset")
	}

	orange, err := table.Code(colors.Orange)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, string(orange)) {
		t.Fatal("output carries no orange code")
	}

	// Orange and reset are the only sequences in play: removing both
	// must already recover the asset.
	plain := strings.ReplaceAll(out, string(orange), "")
	plain = strings.ReplaceAll(plain, string(colors.Reset), "")
	if plain != in {
		t.Error("output contains codes other than orange and reset")
	}
}

func TestTabbyScenario(t *testing.T) {
	table := colors.NewTable()
	in := strings.Repeat("XXXXXX\n", 6)

	out, err := Colorize(in, pattern.Tabby(colors.Brown, colors.Chocolate), table)
	if err != nil {
		t.Fatalf("Colorize failed: %v", err)
	}

	brown, _ := table.Code(colors.Brown)
	chocolate, _ := table.Code(colors.Chocolate)

	lines := strings.Split(out, "\n")
	for i := 0; i < 6; i++ {
		want, other := brown, chocolate
		if i%3 == 0 {
			want, other = chocolate, brown
		}
		if !strings.Contains(lines[i], string(want)) {
			t.Errorf("line %d misses %s", i, Strip(string(want)))
		}
		if strings.Contains(lines[i], string(other)) {
			t.Errorf("line %d should be a single color", i)
		}
	}
}

func TestHeartScenario(t *testing.T) {
	table := colors.NewTable()
	in := mustHeart(t)

	out, err := Colorize(in, pattern.HeartOverlay(), table)
	if err != nil {
		t.Fatalf("Colorize failed: %v", err)
	}

	green, _ := table.Code(colors.ForestGreen)
	pink, _ := table.Code(colors.PinkRed)
	lines := strings.Split(out, "\n")

	// The banner row is entirely forest green.
	if !strings.Contains(lines[0], string(green)) {
		t.Error("banner row carries no forest_green code")
	}
	if strings.Contains(lines[0], string(pink)) {
		t.Error("banner row should carry no pink_red code")
	}

	// The heart body shows on rows 4 through 8.
	for row := 4; row <= 8; row++ {
		if !strings.Contains(lines[row], string(pink)) {
			t.Errorf("row %d carries no pink_red code", row)
		}
	}

	// Filler-only rows stay untouched.
	last := lines[len(lines)-2] // the asset ends with a newline
	if strings.Contains(last, "\x1b") {
		t.Errorf("filler row %q should carry no codes", last)
	}
}

func TestColorizeRunGrouping(t *testing.T) {
	table := colors.NewTable()

	out, err := Colorize("XXXX\n", pattern.Solid(colors.Black), table)
	if err != nil {
		t.Fatalf("Colorize failed: %v", err)
	}
	black, _ := table.Code(colors.Black)
	want := string(black) + "XXXX" + string(colors.Reset) + "\n"
	if out != want {
		t.Errorf("Colorize = %q, want one code/reset pair around the run", out)
	}
}
