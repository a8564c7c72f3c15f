package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drsungwon/mission-restore/internal/app"
	"github.com/drsungwon/mission-restore/internal/cli"
	"github.com/drsungwon/mission-restore/internal/tui"
	"github.com/drsungwon/mission-restore/internal/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.New(cfg)

	// Stdout delivery and --no-animation both need a quiet terminal, so they
	// bypass the TUI.
	if cfg.NoAnimation || cfg.Stdout {
		runPlain(a)
		return
	}

	model := tui.New(a)
	p := tea.NewProgram(model)
	model.SetProgram(p)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if model.Err() != nil {
		os.Exit(1)
	}
}

func runPlain(a *app.App) {
	a.SetProgressCallback(ui.PatchProgress())

	summary, err := a.Execute()
	if err != nil {
		var detailed *app.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		ui.PrintRestoreError(err)
		os.Exit(1)
	}

	if summary.Message != "" {
		ui.Info("%s", summary.Message)
	}
	if summary.Output != "" && summary.Output != "stdout" {
		ui.Success("Restored %s (%d patches applied)", summary.Filename, summary.Patches)
		ui.Path("%s", summary.Output)
	}
}
