package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &runOptions{count: 20, failEvery: 5, sink: "discard", timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "spawned=20 finished=20 completed=16 failed=4 rejected=0 dropped=0 counter=20\n", out.String())
}

func TestRun_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name   string
		opts   *runOptions
		expect string
	}{
		{name: "negative count", opts: &runOptions{count: -1, sink: "discard", timeout: time.Second}, expect: "count must be >= 0"},
		{name: "negative fail every", opts: &runOptions{count: 1, failEvery: -2, sink: "discard", timeout: time.Second}, expect: "fail-every must be >= 0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			var err error
			require.NotPanics(t, func() { err = run(context.Background(), out, tc.opts) })
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expect)
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_ZeroCount(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, &runOptions{sink: "discard", timeout: time.Second}))
	assert.Equal(t, "spawned=0 finished=0 completed=0 failed=0 rejected=0 dropped=0 counter=0\n", out.String())
}

func TestRun_Config(t *testing.T) {
	location := filepath.Join(t.TempDir(), "threadstart.yaml")
	require.NoError(t, os.WriteFile(location, []byte("sink: discard\npolicy:\n  mode: deny\n"), 0o644))

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &runOptions{configURL: location, count: 3, timeout: time.Second})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "spawn denied by policy")
	assert.Contains(t, out.String(), "spawned=0 finished=0 completed=0 failed=0 rejected=3 dropped=0 counter=0")
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"run", "-n", "5", "--sink", "discard", "--timeout", "5s"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "completed=5")
}
