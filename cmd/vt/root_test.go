package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avitaltamir/vibetools/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func parse(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(args))

	f := &flags{}
	f.configPath, _ = cmd.Flags().GetString("config")
	f.page, _ = cmd.Flags().GetString("page")
	f.theme, _ = cmd.Flags().GetString("theme")
	f.debug, _ = cmd.Flags().GetBool("debug")
	f.noClipboard, _ = cmd.Flags().GetBool("no-clipboard")
	return loadConfig(cmd, f)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := parse(t, "--config", filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "start_page = \"hash\"\ntheme = \"moss\"\n")

	cfg, err := parse(t, "-c", path, "-p", "unixtime", "--debug", "--no-clipboard")
	require.NoError(t, err)
	assert.Equal(t, "unixtime", cfg.StartPage)
	assert.Equal(t, "moss", cfg.Theme)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Clipboard.Enabled)
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	path := writeConfig(t, "")

	_, err := parse(t, "-c", path, "--theme", "neon")
	assert.Error(t, err)

	_, err = parse(t, "-c", path, "--page", "calculator")
	assert.Error(t, err)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := writeConfig(t, "list_width = 3\n")
	_, err := parse(t, "-c", path)
	assert.Error(t, err)
}

func TestEnvPath(t *testing.T) {
	path := writeConfig(t, "start_page = \"ulid\"\n")
	t.Setenv(config.EnvPath, path)

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "ulid", cfg.StartPage)
}

func TestVersionTemplate(t *testing.T) {
	assert.Equal(t, "vt dev\n", versionTemplate())
}

func TestRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
