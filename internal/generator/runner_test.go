package generator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpctools/internal/generator"
)

func writeScript(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "gen.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
}

func TestExecRunner_CapturesOutputAndExitCode(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	dir := t.TempDir()
	writeScript(t, dir, "echo shard $2\nexit 3\n")

	res := generator.ExecRunner{}.Run(context.Background(), generator.Command{Path: "./gen.sh", Args: []string{"-S", "2"}, Dir: dir})
	assert.Equal(t, 3, res.ExitCode)
	assert.Error(t, res.Err)
	assert.Equal(t, "shard 2\n", string(res.Output))
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	res := generator.ExecRunner{}.Run(context.Background(), generator.Command{Path: "./absent", Dir: t.TempDir()})
	assert.Equal(t, -1, res.ExitCode)
	assert.Error(t, res.Err)
}

func TestPTYRunner_Success(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	dir := t.TempDir()
	writeScript(t, dir, "echo generating\n")

	res := generator.PTYRunner{}.Run(context.Background(), generator.Command{Path: "./gen.sh", Dir: dir})
	if res.Err != nil && res.ExitCode == -1 {
		t.Skipf("pty unavailable: %v", res.Err)
	}
	require.NoError(t, res.Err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, string(res.Output), "generating")
}
