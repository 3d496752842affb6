package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucax88x/ordklocka/cmd/cli/config"
	"github.com/lucax88x/ordklocka/cmd/cli/config/settings"
	"github.com/lucax88x/ordklocka/cmd/cli/runner"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCfgFlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nlayout: inline\n"), 0o600))

	v := viper.New()
	v.Set(runner.KeyConfig, path)
	v.Set(runner.KeyLogLevel, "debug")

	cfg, loadedFrom, err := runner.LoadCfg(v)

	require.NoError(t, err)
	assert.Equal(t, path, loadedFrom)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.LayoutInline, cfg.Layout)
}

func TestFifoPath(t *testing.T) {
	v := viper.New()
	assert.Equal(t, settings.FifoPath, runner.FifoPath(v))

	v.Set(runner.KeyFifo, "/tmp/other")
	assert.Equal(t, "/tmp/other", runner.FifoPath(v))
}
