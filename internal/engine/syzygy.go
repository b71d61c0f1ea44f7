package engine

import (
	"log/slog"
	"path/filepath"
)

// Tablebases tracks the endgame tablebase search roots set through the
// "SyzygyPath" option. The option uses "<empty>" as its visible default
// because GUIs cannot display an empty string default cleanly.
type Tablebases struct {
	paths []string
}

// NewTablebases returns an empty, disabled tablebase config.
func NewTablebases() *Tablebases { return &Tablebases{} }

// SetPath replaces the probe roots with the entries of path, which uses the
// platform list separator. An empty path or the "<empty>" placeholder
// disables probing.
func (tb *Tablebases) SetPath(path string) {
	if path == "" || path == "<empty>" {
		tb.paths = nil
		slog.Debug("Tablebase probing disabled.")
		return
	}
	tb.paths = filepath.SplitList(path)
	slog.Debug("Tablebase path set.", "roots", tb.paths)
}

// Paths returns the current probe roots, nil when probing is disabled.
func (tb *Tablebases) Paths() []string { return tb.paths }

// Enabled reports whether any probe root is configured.
func (tb *Tablebases) Enabled() bool { return len(tb.paths) > 0 }
