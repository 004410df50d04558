package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninamew/catto/internal/pattern"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all patterns and portraits",
	Long:  `Shows the random candidate pool, the named portraits and the extra art.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	reg := pattern.NewRegistry()
	entries := reg.Entries()
	portraits := pattern.Portraits()

	// Calculate column width
	maxLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxLen {
			maxLen = len(e.Name)
		}
	}
	for _, p := range portraits {
		if len(p.Name) > maxLen {
			maxLen = len(p.Name)
		}
	}

	fmt.Println("Random pool:")
	fmt.Println()
	fmt.Printf("  %-*s\n", maxLen, "Name")
	fmt.Printf("  %-*s\n", maxLen, "----")
	for _, e := range entries {
		fmt.Printf("  %-*s\n", maxLen, e.Name)
	}

	fmt.Println()
	fmt.Println("Portraits (use the matching flag, e.g. catto --iggy):")
	fmt.Println()
	for _, p := range portraits {
		fmt.Printf("  %-*s\n", maxLen, p.Name)
	}

	fmt.Println()
	fmt.Printf("  %-*s\n", maxLen, pattern.HeartOverlay().Name)
	fmt.Println()
	fmt.Println("Run 'catto' with no flags for a random pattern.")
}
