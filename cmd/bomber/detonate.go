package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
	"github.com/vovakirdan/maze-bomber/internal/maze/levels"
	"github.com/vovakirdan/maze-bomber/internal/storage"
)

// errReported marks a failure that was already logged and written to the error file.
var errReported = errors.New("detonation failed")

func runDetonate(cmd *cobra.Command, args []string) error {
	a := newApp()

	report, size, err := detonateFile(a.loader(""), args)

	if store := a.openHistory(); store != nil {
		recordRun(a, store, args, report, size, err)
		store.Close()
	}

	if err != nil {
		reportFailure(a, args, err)
		return errReported
	}

	a.logger.Info("detonated",
		"input", args[0],
		"output", args[1],
		"bombs", report.BombsTriggered(),
		"hit", len(report.Damage),
		"destroyed", report.EnemiesDestroyed(),
	)
	return nil
}

// flagError handles flag parsing failures of the root command like any
// other detonation failure. Subcommands keep cobra's default handling.
func flagError(cmd *cobra.Command, err error) error {
	if cmd != rootCmd {
		return err
	}
	reportFailure(newApp(), nil, fmt.Errorf("%w: %v", core.ErrMalformedInput, err))
	return errReported
}

// reportFailure logs err and writes it to the output path or the error file.
func reportFailure(a *app, args []string, err error) {
	dest := failurePath(args, a.cfg.Output.ErrorFile)
	a.logger.Error("detonation failed", "error", err, "code", core.ErrorCode(err), "written_to", dest)
	if werr := writeFailure(dest, err); werr != nil {
		a.logger.Error("cannot write error file", "path", dest, "error", werr)
	}
}

// detonateFile runs one load/detonate/save cycle for
// <input> <output> <x> <y>. It returns the grid size when the maze loaded.
func detonateFile(loader *levels.Loader, args []string) (core.Report, int, error) {
	if len(args) != 4 {
		return core.Report{}, 0, fmt.Errorf("%w: expected 4 arguments <input> <output> <x> <y>, got %d",
			core.ErrMalformedInput, len(args))
	}

	x, err := parseCoordinate("x", args[2])
	if err != nil {
		return core.Report{}, 0, err
	}
	y, err := parseCoordinate("y", args[3])
	if err != nil {
		return core.Report{}, 0, err
	}

	maze, err := loader.LoadFile(args[0])
	if err != nil {
		return core.Report{}, 0, err
	}

	report, err := core.Detonate(maze.Grid, x, y)
	if err != nil {
		return report, maze.Grid.Size(), err
	}

	if err := loader.Save(args[1], maze.Grid); err != nil {
		return report, maze.Grid.Size(), err
	}
	return report, maze.Grid.Size(), nil
}

func parseCoordinate(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s coordinate %q", core.ErrMalformedInput, name, s)
	}
	return v, nil
}

// failurePath returns the output path when one was given, else the fallback.
func failurePath(args []string, fallback string) string {
	if len(args) >= 2 && args[1] != "" {
		return args[1]
	}
	return fallback
}

// writeFailure writes the error message in the "ERROR: <message>" format.
func writeFailure(path string, err error) error {
	return os.WriteFile(path, []byte("ERROR: "+err.Error()+"\n"), 0o644)
}

func recordRun(a *app, store *storage.Store, args []string, report core.Report, size int, runErr error) {
	run := storage.Run{
		Outcome:          core.ErrorCode(runErr),
		Size:             size,
		BombsTriggered:   report.BombsTriggered(),
		EnemiesDamaged:   len(report.Damage),
		EnemiesDestroyed: report.EnemiesDestroyed(),
	}
	if len(args) > 0 {
		run.Maze = args[0]
	}
	if len(args) == 4 {
		run.X, _ = strconv.Atoi(args[2])
		run.Y, _ = strconv.Atoi(args[3])
	}

	if _, err := store.SaveRun(run); err != nil {
		a.logger.Warn("cannot record run", "error", err)
	}
}
