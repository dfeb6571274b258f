// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"time"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations. It is
// the only consumer of the wrapped statistics record; rendering code has no
// other coupling to the engine.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteWrapped prints the wrapped statistics using the configured output format.
func (ow *OutWriter) WriteWrapped(stats *schema.WrappedStats, cfg *contract.Config, duration time.Duration) error {
	return WriteWrappedResults(stats, cfg, duration)
}

// getMaxTableNameWidth calculates the maximum width for package names in
// table output based on terminal width. Scoped package names can get long.
func getMaxTableNameWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the rank and count columns plus borders/padding.
	available := termWidth - 30
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// truncateName shortens a package name to fit the table, keeping the tail
// visible since scope prefixes repeat across entries.
func truncateName(name string, maxWidth int) string {
	if len(name) <= maxWidth {
		return name
	}
	if maxWidth <= 3 {
		return name[:maxWidth]
	}
	return fmt.Sprintf("...%s", name[len(name)-maxWidth+3:])
}
