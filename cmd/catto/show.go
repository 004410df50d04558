package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ninamew/catto/internal/art"
	"github.com/ninamew/catto/internal/colors"
	"github.com/ninamew/catto/internal/config"
	"github.com/ninamew/catto/internal/pattern"
	"github.com/ninamew/catto/internal/render"
)

var captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Italic(true)

// showRandom draws one pattern uniformly from the candidate pool and
// renders the cat with it.
func showRandom(cfg config.Config) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	entry := pattern.NewRegistry().Random(rng)
	caption := fmt.Sprintf("a %s catto appears!", entry.Name)
	return show(entry.Pattern, caption, cfg)
}

// showNamed renders the portrait (or the heart art) selected by name.
func showNamed(name string, cfg config.Config) error {
	p, ok := pattern.NewRegistry().Lookup(name)
	if !ok {
		return fmt.Errorf("unknown catto %q", name)
	}
	caption := "it's " + name + "!"
	if p.Kind == pattern.KindHeartOverlay {
		caption = "catto sends love"
	}
	return show(p, caption, cfg)
}

// show runs the whole pipeline: load the asset, colorize, write.
func show(p pattern.Pattern, caption string, cfg config.Config) error {
	text, err := assetFor(p)
	if err != nil {
		return err
	}

	colored := colorEnabled(cfg)
	out := text
	if colored {
		out, err = render.Colorize(text, p, colors.NewTable())
		if err != nil {
			return err
		}
	}

	var captions []string
	if cfg.Caption && !flagNoCaption {
		if colored {
			caption = captionStyle.Render(caption)
		}
		captions = append(captions, caption)
	}
	writeLines(os.Stdout, out, captions...)
	return nil
}

// assetFor returns the art a pattern is meant for. Only the heart
// overlay targets the companion piece.
func assetFor(p pattern.Pattern) (string, error) {
	if p.Kind == pattern.KindHeartOverlay {
		return art.Heart()
	}
	return art.Catto()
}

// writeLines emits the art and the caption lines verbatim, each block
// followed by a line terminator.
func writeLines(w io.Writer, text string, captions ...string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(w, text)
	for _, c := range captions {
		fmt.Fprintln(w, c)
	}
}

// colorEnabled resolves the color mode: the --color flag wins over the
// config, and auto means "stdout is a terminal".
func colorEnabled(cfg config.Config) bool {
	mode := cfg.Color
	if flagColor != "" {
		mode = flagColor
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
