// Package render applies a coat pattern to art text, producing the same
// text with color escape sequences woven in.
package render

import (
	"regexp"
	"strings"

	"github.com/ninamew/catto/internal/colors"
	"github.com/ninamew/catto/internal/pattern"
)

// Colorize applies p to text using table codes. The characters and the
// line/column structure come through untouched; only escape sequences
// are added. Whitespace never gets a code, and consecutive same-color
// glyphs share one code/reset pair to keep the output small.
func Colorize(text string, p pattern.Pattern, table *colors.Table) (string, error) {
	lines := strings.Split(text, "\n")
	total := len(lines)
	if total > 0 && lines[total-1] == "" {
		// Trailing newline; the phantom last element is not a row.
		total--
	}

	var sb strings.Builder
	sb.Grow(len(text) * 2)

	for i, lineText := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		ln := pattern.NewLine(lineText, i, total)
		runes := []rune(lineText)

		j := 0
		for j < len(runes) {
			ch := runes[j]
			if isSpace(ch) {
				sb.WriteRune(ch)
				j++
				continue
			}
			name, ok := p.ColorAt(ln, j, ch)
			if !ok {
				sb.WriteRune(ch)
				j++
				continue
			}
			code, err := table.Code(name)
			if err != nil {
				return "", err
			}

			// Extend the run while the color holds.
			start := j
			j++
			for j < len(runes) && !isSpace(runes[j]) {
				next, nextOK := p.ColorAt(ln, j, runes[j])
				if !nextOK || next != name {
					break
				}
				j++
			}

			sb.WriteString(string(code))
			sb.WriteString(string(runes[start:j]))
			sb.WriteString(string(colors.Reset))
		}
	}
	return sb.String(), nil
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

// sgrPattern matches the color escape sequences Colorize emits.
var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Strip removes every color escape from s, recovering the raw art.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
