package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ninamew/catto/internal/pattern"
	"github.com/ninamew/catto/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a pattern interactively",
	Long: `Start an interactive picker over every pattern and portrait.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Show the selection
  Q/Esc        - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	name, err := tui.RunMenu(pattern.NewRegistry())
	if err != nil {
		log.Fatal("menu failed", "err", err)
	}
	if name == "" {
		return // user quit without choosing
	}
	if err := showNamed(name, cfg); err != nil {
		log.Fatal("could not show catto", "err", err)
	}
}
