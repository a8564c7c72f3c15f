package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/drsungwon/mission-restore/internal/ui"
)

// Provider determines and retrieves the log document to restore from.
type Provider struct {
	// Path of the log file; empty means stdin (if piped) or the clipboard.
	Path string

	cached bool
	text   string
}

// New creates a Provider for the given log path.
func New(path string) *Provider {
	return &Provider{Path: path}
}

// GetContent retrieves the log text from the configured file, from stdin when
// piped, or from the clipboard as a last resort. The text is cached so
// repeated calls do not re-read a consumed pipe. I/O errors are tagged with
// the failing path.
func (p *Provider) GetContent() (string, error) {
	if p.cached {
		return p.text, nil
	}
	text, err := p.readContent()
	if err != nil {
		return "", err
	}
	p.cached = true
	p.text = text
	return text, nil
}

func (p *Provider) readContent() (string, error) {
	if p.Path != "" {
		data, err := os.ReadFile(p.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read log file %q: %w", p.Path, err)
		}
		return string(data), nil
	}

	stat, _ := os.Stdin.Stat()
	isPiped := (stat.Mode() & os.ModeCharDevice) == 0

	if isPiped {
		ui.Header("--- Reading log from stdin ---")
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), nil
	}

	ui.Header("--- Reading log from clipboard ---")
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		ui.Warning("Clipboard is empty. Nothing to restore.")
		return "", nil
	}
	return content, nil
}
