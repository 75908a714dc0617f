package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-strike/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List difficulty suggestion backends",
	Long:  `Shows the difficulty suggestion backends that can be selected with --difficulty.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Difficulty backends:")
	fmt.Println()

	maxNameLen := len("Name")
	for _, b := range backends {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'strike play --difficulty <name>' to use one.")
}
