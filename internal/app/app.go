package app

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/skirmish/internal/ctxlog"
	"github.com/vk/skirmish/internal/engine"
	"github.com/vk/skirmish/internal/manifest"
	"github.com/vk/skirmish/internal/uci"
)

// Engine identity announced during the UCI handshake.
const (
	Name   = "Skirmish"
	Author = "the Skirmish developers"
)

//go:embed options.hcl
var defaultManifest []byte

// App is one engine instance: its logger, its option registry and the
// subsystems the option hooks reconfigure.
type App struct {
	outW io.Writer // protocol stream
	errW io.Writer // log stream
	cfg  *Config

	logger  *slog.Logger
	logFile *os.File

	options    *uci.OptionsMap
	hash       *engine.HashTable
	pool       *engine.Pool
	values     *engine.PieceValues
	tablebases *engine.Tablebases
}

// NewApp builds a fully initialized engine instance. Protocol output goes to
// outW, logging to errW; the two must stay separate or the GUI will choke on
// log lines. A manifest that names a hook this binary does not provide is a
// startup error.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured.")

	a := &App{
		outW:       outW,
		errW:       errW,
		cfg:        cfg,
		logger:     logger,
		hash:       engine.NewHashTable(16),
		pool:       engine.NewPool(1),
		values:     engine.NewPieceValues(),
		tablebases: engine.NewTablebases(),
	}

	var decls []manifest.Declaration
	var err error
	if cfg.OptionsPath != "" {
		decls, err = manifest.Load(ctx, cfg.OptionsPath)
	} else {
		decls, err = manifest.ParseBytes(ctx, defaultManifest, "options.hcl")
	}
	if err != nil {
		return nil, fmt.Errorf("loading option manifest: %w", err)
	}

	om := uci.NewOptionsMap()
	if err := declareAll(om, decls, a.hooks()); err != nil {
		return nil, err
	}
	a.options = om
	logger.Debug("Option registry populated.", "options", om.Len())

	a.syncSubsystems()

	for _, set := range cfg.Sets {
		name, value, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("malformed -set %q, want Name=Value", set)
		}
		if !a.options.Assign(name, value) {
			return nil, fmt.Errorf("unknown option %q in -set", name)
		}
	}

	return a, nil
}

// hooks is the table the manifest's on_change names resolve against.
func (a *App) hooks() map[string]uci.OnChange {
	return map[string]uci.OnChange{
		"OnLogFile":       func(o uci.Option) { a.setLogFile(o.Text()) },
		"OnThreads":       func(o uci.Option) { a.pool.Set(o.Int()) },
		"OnHashSize":      func(o uci.Option) { a.hash.Resize(o.Int()) },
		"OnClearHash":     func(uci.Option) { a.hash.Clear() },
		"OnTablebasePath": func(o uci.Option) { a.tablebases.SetPath(o.Text()) },
		"OnPieceValue":    func(uci.Option) { a.values.Recompute(a.options) },
		"OnVariant":       func(o uci.Option) { engine.AnnounceVariant(a.outW, a.xboard(), o.Text()) },
	}
}

// declareAll turns manifest declarations into registry entries, binding each
// on_change name to its compiled hook. Unknown hook names fail startup: the
// manifest and the binary must agree.
func declareAll(om *uci.OptionsMap, decls []manifest.Declaration, hooks map[string]uci.OnChange) error {
	for _, d := range decls {
		var fn uci.OnChange
		if d.OnChange != "" {
			var ok bool
			if fn, ok = hooks[d.OnChange]; !ok {
				return fmt.Errorf("option %q references unknown hook %q", d.Name, d.OnChange)
			}
		}
		opt, err := buildOption(d, fn)
		if err != nil {
			return err
		}
		om.Declare(d.Name, opt)
	}
	return nil
}

// syncSubsystems applies manifest defaults to the subsystems once, since
// declaring never fires hooks.
func (a *App) syncSubsystems() {
	if o, ok := a.options.Lookup("Hash"); ok {
		a.hash.Resize(o.Int())
	}
	if o, ok := a.options.Lookup("Threads"); ok {
		a.pool.Set(o.Int())
	}
	if o, ok := a.options.Lookup("SyzygyPath"); ok {
		a.tablebases.SetPath(o.Text())
	}
	a.values.Recompute(a.options)
}

// xboard reports whether the alternate protocol dialect is active, which is
// decided solely by the current value of the "Protocol" option.
func (a *App) xboard() bool {
	p, ok := a.options.Lookup("Protocol")
	return ok && p.Kind() == uci.Combo && p.EqualFold("xboard")
}

// setLogFile is the "Debug Log File" hook: an empty value returns logging to
// the plain log stream, anything else tees it into the named file at debug
// level.
func (a *App) setLogFile(path string) {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
	if path == "" {
		a.logger = newLogger(a.cfg.LogLevel, a.cfg.LogFormat, a.errW)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		a.logger.Error("Cannot open debug log file.", "path", path, "error", err)
		return
	}
	a.logFile = f
	a.logger = newLogger("debug", a.cfg.LogFormat, io.MultiWriter(a.errW, f))
	a.logger.Info("Debug log file opened.", "path", path)
}

// Options returns the engine's option registry.
func (a *App) Options() *uci.OptionsMap { return a.options }

// HashTable returns the transposition table, primarily for tests.
func (a *App) HashTable() *engine.HashTable { return a.hash }

// Pool returns the search worker pool, primarily for tests.
func (a *App) Pool() *engine.Pool { return a.pool }

// PieceValues returns the evaluation value table, primarily for tests.
func (a *App) PieceValues() *engine.PieceValues { return a.values }

// Tablebases returns the tablebase configuration, primarily for tests.
func (a *App) Tablebases() *engine.Tablebases { return a.tablebases }

// Close releases the worker pool and any open debug log file.
func (a *App) Close() {
	a.pool.Close()
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}
