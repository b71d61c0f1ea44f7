package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	conf, err := NewConfig(cfg)
	require.NoError(t, err)
	a, err := NewApp(io.Discard, io.Discard, conf)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestNewApp_DeclaresEmbeddedTable(t *testing.T) {
	a := newTestApp(t, Config{})

	require.Equal(t, 41, a.Options().Len())

	// Subsystems pick up the manifest defaults even though declaring does
	// not fire hooks.
	assert.Equal(t, 16, a.HashTable().SizeMB())
	assert.Equal(t, 1, a.Pool().Size())
	assert.Equal(t, 10, a.PieceValues().Pieces())
	assert.False(t, a.Tablebases().Enabled())
}

func TestRun_UCIHandshake(t *testing.T) {
	var out strings.Builder
	conf, err := NewConfig(Config{})
	require.NoError(t, err)
	a, err := NewApp(&out, io.Discard, conf)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Run(context.Background()))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "id name "+Name+"\nid author "+Author))
	assert.Contains(t, got, "\noption name Threads type spin default 1 min 1 max 512")
	assert.Contains(t, got, "\noption name Hash type spin default 16 min 1 max 131072")
	assert.Contains(t, got, "\noption name Analysis Contempt type combo default Both var Both var Off var White var Black")
	assert.NotContains(t, got, "option name Protocol")
	assert.True(t, strings.HasSuffix(got, "\nuciok\n"))
}

func TestRun_XBoardHandshake(t *testing.T) {
	var out strings.Builder
	conf, err := NewConfig(Config{Sets: []string{"Protocol=xboard"}})
	require.NoError(t, err)
	a, err := NewApp(&out, io.Discard, conf)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "\nfeature option=\"Threads -spin 1 1 512\"")
	assert.Contains(t, got, "\nfeature option=\"Analysis Contempt -combo Both /// Off /// White /// Black\"")
	assert.NotContains(t, got, "option name")
	assert.NotContains(t, got, "Protocol -combo")
	assert.True(t, strings.HasSuffix(got, "\nfeature done=1\n"))
}

func TestHooks_ReconfigureSubsystems(t *testing.T) {
	a := newTestApp(t, Config{})

	require.True(t, a.Options().Assign("Hash", "32"))
	assert.Equal(t, 32, a.HashTable().SizeMB())

	require.True(t, a.Options().Assign("Threads", "4"))
	assert.Equal(t, 4, a.Pool().Size())

	require.True(t, a.Options().Assign("SyzygyPath", "/tb"))
	assert.Equal(t, []string{"/tb"}, a.Tablebases().Paths())

	require.True(t, a.Options().Assign("CannonValueMg", "2000"))
	assert.Equal(t, 2000, a.PieceValues().Midgame("Cannon"))

	// An out-of-range value changes nothing.
	require.True(t, a.Options().Assign("Hash", "999999"))
	assert.Equal(t, 32, a.HashTable().SizeMB())
}

func TestHooks_VariantAnnouncement(t *testing.T) {
	var out strings.Builder
	conf, err := NewConfig(Config{})
	require.NoError(t, err)
	a, err := NewApp(&out, io.Discard, conf)
	require.NoError(t, err)
	defer a.Close()

	require.True(t, a.Options().Assign("UCI_Variant", "musketeer"))
	assert.True(t, strings.HasPrefix(out.String(), "info string variant musketeer "))

	out.Reset()
	require.True(t, a.Options().Assign("Protocol", "xboard"))
	require.True(t, a.Options().Assign("UCI_Variant", "musketeer"))
	assert.True(t, strings.HasPrefix(out.String(), "setup ("))
	assert.Contains(t, out.String(), "piece L& NB2\n")
}

func TestNewApp_SetPairs(t *testing.T) {
	a := newTestApp(t, Config{Sets: []string{"Threads=8", "Ponder=true"}})

	threads, ok := a.Options().Lookup("Threads")
	require.True(t, ok)
	assert.Equal(t, 8, threads.Int())

	ponder, ok := a.Options().Lookup("Ponder")
	require.True(t, ok)
	assert.True(t, ponder.Bool())
}

func TestNewApp_SetErrors(t *testing.T) {
	testCases := []struct {
		name string
		set  string
	}{
		{name: "unknown option", set: "Cores=4"},
		{name: "missing equals", set: "Threads"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf, err := NewConfig(Config{Sets: []string{tc.set}})
			require.NoError(t, err)
			_, err = NewApp(io.Discard, io.Discard, conf)
			assert.Error(t, err)
		})
	}
}

func TestNewApp_ManifestFromDisk(t *testing.T) {
	dir := t.TempDir()
	src := `
option "Protocol" {
  type    = "combo"
  default = "uci"
  values  = ["uci", "xboard"]
}

option "Ponder" {
  type    = "check"
  default = false
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "options.hcl"), []byte(src), 0o644))

	a := newTestApp(t, Config{OptionsPath: dir})
	assert.Equal(t, 2, a.Options().Len())
}

func TestNewApp_UnknownHookFailsStartup(t *testing.T) {
	dir := t.TempDir()
	src := `
option "Ponder" {
  type      = "check"
  default   = false
  on_change = "OnPonder"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "options.hcl"), []byte(src), 0o644))

	conf, err := NewConfig(Config{OptionsPath: dir})
	require.NoError(t, err)
	_, err = NewApp(io.Discard, io.Discard, conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hook")
}

func TestDebugLogFileHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.log")
	a := newTestApp(t, Config{})

	require.True(t, a.Options().Assign("Debug Log File", path))
	a.logger.Info("probe")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe")
}
