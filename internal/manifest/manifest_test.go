package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/skirmish/internal/uci"
)

const sampleManifest = `
option "Protocol" {
  type    = "combo"
  default = "uci"
  values  = ["uci", "xboard"]
}

option "Debug Log File" {
  type      = "string"
  on_change = "OnLogFile"
}

option "Threads" {
  type      = "spin"
  default   = 1
  min       = 1
  max       = 512
  on_change = "OnThreads"
}

option "Ponder" {
  type    = "check"
  default = false
}

option "Clear Hash" {
  type      = "button"
  on_change = "OnClearHash"
}
`

func TestParseBytes_AllKinds(t *testing.T) {
	decls, err := ParseBytes(context.Background(), []byte(sampleManifest), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, decls, 5)

	// Manifest order is declaration order.
	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Protocol", "Debug Log File", "Threads", "Ponder", "Clear Hash"}, names)

	protocol := decls[0]
	assert.Equal(t, uci.Combo, protocol.Kind)
	assert.Equal(t, []string{"uci", "xboard"}, protocol.Values)
	var def string
	require.NoError(t, gocty.FromCtyValue(protocol.Default, &def))
	assert.Equal(t, "uci", def)

	logFile := decls[1]
	assert.Equal(t, uci.String, logFile.Kind)
	assert.Equal(t, "OnLogFile", logFile.OnChange)
	assert.Equal(t, cty.StringVal(""), logFile.Default)

	threads := decls[2]
	assert.Equal(t, uci.Spin, threads.Kind)
	assert.Equal(t, 1, threads.Min)
	assert.Equal(t, 512, threads.Max)
	var defNum float64
	require.NoError(t, gocty.FromCtyValue(threads.Default, &defNum))
	assert.Equal(t, float64(1), defNum)

	ponder := decls[3]
	assert.Equal(t, uci.Check, ponder.Kind)
	assert.Equal(t, cty.False, ponder.Default)
	assert.Empty(t, ponder.OnChange)

	button := decls[4]
	assert.Equal(t, uci.Button, button.Kind)
	assert.Equal(t, cty.NilVal, button.Default)
	assert.Equal(t, "OnClearHash", button.OnChange)
}

func TestParseBytes_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name: "unknown type",
			src: `option "X" {
  type = "dial"
}`,
			wantErr: "Unknown option type",
		},
		{
			name: "missing type",
			src: `option "X" {
  default = 1
}`,
			wantErr: "Missing 'type' attribute",
		},
		{
			name: "spin default out of range",
			src: `option "X" {
  type    = "spin"
  default = 0
  min     = 1
  max     = 512
}`,
			wantErr: "Spin default out of range",
		},
		{
			name: "spin min above max",
			src: `option "X" {
  type    = "spin"
  default = 5
  min     = 9
  max     = 1
}`,
			wantErr: "Spin default out of range",
		},
		{
			name: "spin without bounds",
			src: `option "X" {
  type    = "spin"
  default = 1
}`,
			wantErr: "Missing spin bounds",
		},
		{
			name: "check without default",
			src: `option "X" {
  type = "check"
}`,
			wantErr: "Missing 'default' attribute",
		},
		{
			name: "check default wrong type",
			src: `option "X" {
  type    = "check"
  default = "maybe"
}`,
			wantErr: "Invalid default value type",
		},
		{
			name: "combo default not a member",
			src: `option "X" {
  type    = "combo"
  default = "both"
  values  = ["Both", "Off"]
}`,
			wantErr: "Combo default not in allowed set",
		},
		{
			name: "combo without values",
			src: `option "X" {
  type    = "combo"
  default = "Both"
}`,
			wantErr: "Missing 'values' attribute",
		},
		{
			name: "button with default",
			src: `option "X" {
  type    = "button"
  default = "x"
}`,
			wantErr: "Button options hold no value",
		},
		{
			name: "case-insensitive duplicate",
			src: `
option "Hash" {
  type    = "spin"
  default = 16
  min     = 1
  max     = 128
}

option "HASH" {
  type    = "spin"
  default = 16
  min     = 1
  max     = 128
}
`,
			wantErr: "Duplicate option definition",
		},
		{
			name: "unsupported attribute",
			src: `option "X" {
  type    = "check"
  default = true
  colour  = "red"
}`,
			wantErr: "Unsupported argument",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBytes(context.Background(), []byte(tc.src), tc.name+".hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_DirectoryAndCrossFileDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	writeFile("a.hcl", `option "Hash" {
  type    = "spin"
  default = 16
  min     = 1
  max     = 128
}`)
	writeFile("b.hcl", `option "Ponder" {
  type    = "check"
  default = false
}`)

	decls, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, decls, 2)

	// A colliding name in a later file is still a duplicate.
	writeFile("c.hcl", `option "hash" {
  type    = "spin"
  default = 16
  min     = 1
  max     = 128
}`)
	_, err = Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate option definition")
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
