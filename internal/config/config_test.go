package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avitaltamir/vibetools/internal/msg"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 20, cfg.ListWidth)
	assert.Equal(t, "harbor", cfg.Theme)
	assert.Equal(t, msg.PageUUID, cfg.Page())
	assert.Equal(t, ", ", cfg.HelpDelimiter)
	assert.True(t, cfg.Clipboard.Enabled)
	assert.Empty(t, cfg.LogFile)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	t.Run("overrides only the given keys", func(t *testing.T) {
		cfg, err := Parse([]byte(`
list_width = 30
start_page = "hash"
debug = true

[clipboard]
enabled = false
`))
		require.NoError(t, err)

		assert.Equal(t, 30, cfg.ListWidth)
		assert.Equal(t, msg.PageHash, cfg.Page())
		assert.True(t, cfg.Debug)
		assert.False(t, cfg.Clipboard.Enabled)
		assert.Equal(t, "harbor", cfg.Theme)
	})

	tests := []struct {
		name string
		data string
	}{
		{"syntax error", `list_width = `},
		{"list width too small", `list_width = 3`},
		{"list width too large", `list_width = 99`},
		{"unknown theme", `theme = "neon"`},
		{"unknown page", `start_page = "sha"`},
		{"empty delimiter", `help_delimiter = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`theme = "ember"`), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "ember", cfg.Theme)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvPath, "/tmp/custom.toml")

		p, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.toml", p)
	})

	t.Run("user config dir", func(t *testing.T) {
		t.Setenv(EnvPath, "")
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		t.Setenv("HOME", "/tmp/home")

		p, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, "config.toml", filepath.Base(p))
		assert.Equal(t, "vibetools", filepath.Base(filepath.Dir(p)))
	})
}
