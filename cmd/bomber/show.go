package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
	"github.com/vovakirdan/maze-bomber/internal/platform/tui"
)

var (
	flagShowX int
	flagShowY int
)

var showCmd = &cobra.Command{
	Use:   "show <maze>",
	Short: "Preview a maze or a detonation",
	Long: `Render a maze in the terminal. When a trigger is given with --x and --y,
or the YAML maze declares one, the maze is rendered before and after the
detonation side by side. Nothing is written to disk.

Examples:
  bomber show maze.txt
  bomber show maze.txt --x 0 --y 4
  bomber show deflectors.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagShowX, "x", 0, "Trigger column")
	showCmd.Flags().IntVar(&flagShowY, "y", 0, "Trigger row")
}

func runShow(cmd *cobra.Command, args []string) {
	a := newApp()
	theme := a.theme(term.IsTerminal(int(os.Stdout.Fd())))

	maze, err := a.loader("").LoadFile(args[0])
	if err != nil {
		a.logger.Error("cannot load maze", "path", args[0], "error", err)
		os.Exit(1)
	}

	trigger, ok := maze.Trigger, maze.HasTrigger
	if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
		trigger, ok = core.C(flagShowX, flagShowY), true
	}

	if !ok {
		fmt.Println(tui.RenderSummary(maze.Name, maze.Grid, theme))
		return
	}

	after := maze.Grid.Clone()
	report, err := core.Detonate(after, trigger.X, trigger.Y)
	if err != nil {
		a.logger.Error("cannot detonate", "trigger", trigger, "error", err)
		os.Exit(1)
	}

	title := fmt.Sprintf("%s: detonation at %s", maze.Name, trigger)
	fmt.Println(tui.RenderPreview(title, maze.Grid, after, report, theme))
}
