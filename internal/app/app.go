package app

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/drsungwon/mission-restore/internal/cli"
	"github.com/drsungwon/mission-restore/internal/engine"
	"github.com/drsungwon/mission-restore/internal/fs"
	"github.com/drsungwon/mission-restore/internal/model"
	"github.com/drsungwon/mission-restore/internal/nvim"
	"github.com/drsungwon/mission-restore/internal/source"
)

// App orchestrates the entire restore: log acquisition, the engine fold, and
// delivery of the reconstructed file.
type App struct {
	cfg              *cli.Config
	sourceProvider   *source.Provider
	progressCallback engine.ProgressFunc
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	return &App{
		cfg:            cfg,
		sourceProvider: source.New(cfg.LogFile),
	}
}

// SetProgressCallback sets a function to be called after each applied patch.
func (a *App) SetProgressCallback(cb engine.ProgressFunc) {
	a.progressCallback = cb
}

// Execute runs the restore end to end and returns a summary for display.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	content, err := a.sourceProvider.GetContent()
	if err != nil {
		return model.Summary{}, err
	}
	if content == "" {
		return model.Summary{Message: "Log source is empty. Nothing to restore."}, nil
	}

	result, err := engine.Restore(content, a.progressCallback)
	if err != nil {
		return model.Summary{}, err
	}

	return a.deliver(result)
}

// deliver hands the restored file to its configured destination: a Neovim
// buffer, stdout, or a file on disk.
func (a *App) deliver(result *engine.Result) (model.Summary, error) {
	target := a.cfg.OutputFile
	if target == "" {
		target = result.Filename
	}

	summary := model.Summary{
		Filename: result.Filename,
		Patches:  result.PatchesApplied,
	}

	switch {
	case a.cfg.Buffer:
		manager, err := nvim.New()
		if err != nil {
			return model.Summary{}, err
		}
		defer manager.Close()
		if err := manager.LoadRestoredFile(target, result.Lines); err != nil {
			return model.Summary{}, err
		}
		summary.Output = relativize(target)
		summary.Message = "Restored file loaded into Neovim buffer (not saved)."
	case a.cfg.Stdout:
		fmt.Println(result.Text())
		summary.Output = "stdout"
	default:
		if err := fs.WriteRestoredFile(a.cfg.OutputFile, result.Text()); err != nil {
			return model.Summary{}, err
		}
		summary.Output = relativize(a.cfg.OutputFile)
	}

	return summary, nil
}

// relativize converts a path to be relative to the working directory for
// cleaner display.
func relativize(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
