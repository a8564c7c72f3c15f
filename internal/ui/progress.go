package ui

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/drsungwon/mission-restore/internal/engine"
)

// PatchProgress returns an engine progress callback that renders a progress
// bar on stderr as patches are applied. The bar is created lazily on the
// first callback, once the patch total is known.
func PatchProgress() engine.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(applied, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Applying patches"),
				progressbar.OptionShowCount(),
				progressbar.OptionOnCompletion(func() { os.Stderr.WriteString("\n") }),
			)
		}
		bar.Set(applied)
	}
}
