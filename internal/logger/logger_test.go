package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninitializedIsSilent(t *testing.T) {
	Reset()
	defer Reset()

	assert.NotPanics(t, func() {
		Info("nobody hears %s", "this")
		Error("or this")
	})
	assert.Empty(t, Path())
}

func TestInitWritesFile(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "nested", "vt.log")
	require.NoError(t, Init(path))
	assert.Equal(t, path, Path())

	Info("hello %d", 42)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Logger initialized")
	assert.Contains(t, string(data), "hello 42")
}

func TestDebugLevel(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	InitWriter(&buf)

	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "vibetools.log", filepath.Base(DefaultPath()))
}
