package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pprank/gen"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute(), "stderr: %s", errOut.String())
	return out.String(), errOut.String()
}

func TestDemoCommand(t *testing.T) {
	stdout, stderr := execute(t, "demo")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, gen.DemoNodes+2, "header, one row per node, verdict")
	assert.Equal(t, []string{"RANK", "NODE", "SCORE", "SHARE"}, strings.Fields(lines[0]))
	for i, line := range lines[1 : gen.DemoNodes+1] {
		fields := strings.Fields(line)
		require.Len(t, fields, 4, "row %d", i+1)
	}
	assert.Equal(t, "identical across runs: true", lines[len(lines)-1])
	assert.Contains(t, stderr, "demo complete")
}

func TestRunCommand_Star(t *testing.T) {
	stdout, stderr := execute(t, "run",
		"--graph", "star", "--nodes", "3", "--restart", "0", "--top", "2",
		"--strategy", "sequential", "--log-level", "info")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"RANK", "NODE", "SCORE", "SHARE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "0"}, strings.Fields(lines[1])[:2], "the restarted hub ranks first")
	assert.Contains(t, stderr, "run_id")
	assert.Contains(t, stderr, "ranking done")
}
