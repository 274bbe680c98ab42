package threadstart

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	cfg, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "discard", cfg.Sink)
	assert.Equal(t, 8, cfg.MaxThreads)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, 16, cfg.Events.Buffer)
	require.NotNil(t, cfg.Policy)
	assert.Equal(t, []string{"forbidden"}, cfg.Policy.BlockList)
	assert.Equal(t, "threadstart", cfg.Tracing.Service)
}

func TestLoadConfig_TOML(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("testdata", "config.toml"))
	require.NoError(t, err)
	cfg, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "log", cfg.Sink)
	assert.Equal(t, 2, cfg.MaxThreads)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, 256, cfg.Events.Buffer)
	require.NotNil(t, cfg.Policy)
	assert.Equal(t, "deny", cfg.Policy.Mode)
}

func TestDecodeConfigTOML_Invalid(t *testing.T) {
	_, err := DecodeConfigTOML([]byte("maxThreads = -3\n"))
	assert.Error(t, err)
	_, err = DecodeConfigTOML([]byte("maxThreads = [\n"))
	assert.Error(t, err)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDecodeConfig(t *testing.T) {
	testCases := []struct {
		name      string
		yaml       string
		expectErr  bool
		expectSink string
	}{
		{name: "empty keeps defaults", yaml: ""},
		{name: "negative threads", yaml: "maxThreads: -1", expectErr: true},
		{name: "unknown sink", yaml: "sink: kafka", expectErr: true},
		{name: "sink is case insensitive", yaml: "sink: LOG", expectSink: "LOG"},
		{name: "bad level", yaml: "log:\n  level: loud", expectErr: true},
		{name: "bad policy", yaml: "policy:\n  mode: ask", expectErr: true},
		{name: "malformed", yaml: "events: [", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := DecodeConfig([]byte(tc.yaml))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expect := DefaultConfig()
			if tc.expectSink != "" {
				expect.Sink = tc.expectSink
			}
			assert.Equal(t, expect, cfg)
		})
	}
}

func TestDecodeConfig_Env(t *testing.T) {
	t.Setenv("THREADSTART_MAX_THREADS", "4")
	cfg, err := DecodeConfig([]byte("maxThreads: ${env.THREADSTART_MAX_THREADS}\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxThreads)
}

func TestLoadConfig_TempFile(t *testing.T) {
	location := filepath.Join(t.TempDir(), "threadstart.yaml")
	require.NoError(t, os.WriteFile(location, []byte("sink: log\nmaxThreads: 2\n"), 0o644))
	cfg, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxThreads)
	assert.False(t, cfg.Events.Enabled)
}
