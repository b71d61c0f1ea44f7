package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsUCIOptionBlock(t *testing.T) {
	var out, errOut strings.Builder

	require.NoError(t, run(&out, &errOut, nil))

	assert.Contains(t, out.String(), "id name Skirmish")
	assert.Contains(t, out.String(), "\noption name Hash type spin default 16 min 1 max 131072")
	assert.True(t, strings.HasSuffix(out.String(), "\nuciok\n"))
}

func TestRun_XBoardViaSetFlag(t *testing.T) {
	var out strings.Builder

	require.NoError(t, run(&out, io.Discard, []string{"-set", "Protocol=xboard"}))

	assert.Contains(t, out.String(), "feature option=\"Hash -spin 16 1 131072\"")
	assert.True(t, strings.HasSuffix(out.String(), "\nfeature done=1\n"))
}

func TestRun_BadFlagReturnsExitError(t *testing.T) {
	err := run(io.Discard, io.Discard, []string{"-log-level", "loud"})
	assert.Error(t, err)
}
