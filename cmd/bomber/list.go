package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List maze files in a directory",
	Long: `Scan a directory (default: current directory) for maze files
(.txt, .maze, .yaml, .yml) and show their size and contents.
Files that fail to decode are skipped with a warning.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	a := newApp()

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	mazes, err := a.loader(root).LoadAll()
	if err != nil {
		a.logger.Error("cannot scan mazes", "dir", root, "error", err)
		os.Exit(1)
	}

	if len(mazes) == 0 {
		fmt.Println("No mazes found.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %-5s  %-7s  %s\n", maxIDLen, "ID", "Size", "Bombs", "Enemies", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %-7s  %s\n", maxIDLen, "--", "----", "-----", "-------", "----")

	// Print mazes
	for _, m := range mazes {
		g := m.Grid
		bombs := g.Count(core.KindBomb) + g.Count(core.KindPiercingBomb)
		fmt.Printf("  %-*s  %-5d  %-5d  %-7d  %s\n", maxIDLen, m.ID, g.Size(), bombs, g.Count(core.KindEnemy), m.Name)
	}

	fmt.Println()
	fmt.Println("Run 'bomber show <file>' to preview a maze.")
}
