package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/infrastructure/config"
)

func TestInitConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "splitter")
	renderer := newConfigRenderer()
	var buf bytes.Buffer

	// First run writes both files
	require.NoError(t, initConfig(&buf, renderer, dir, false))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	// Second run keeps the user's file
	path := config.ConfigFileIn(dir)
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))
	buf.Reset()
	require.NoError(t, initConfig(&buf, renderer, dir, false))
	assert.Contains(t, buf.String(), "already exists")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))

	// --force overwrites it
	require.NoError(t, initConfig(&buf, renderer, dir, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[layout]")
}

func TestShowConfig(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.ConfigFileIn(dir), []byte("[resize]\nkeyboard_step_percent = 2.5\n"), 0o644))
	var buf bytes.Buffer

	require.NoError(t, showConfig(&buf, dir))

	out := buf.String()
	assert.Contains(t, out, "keyboard_step_percent = 2.5")
	assert.Contains(t, out, "[appearance]", "defaults are filled in")
}

func TestShowConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.ConfigFileIn(dir), []byte("[resize]\nkeyboard_step_percent = 0\n"), 0o644))

	err := showConfig(&bytes.Buffer{}, dir)

	assert.Error(t, err)
}

func TestPrintSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSchema(&buf, newConfigRenderer(), ""))
	assert.Contains(t, buf.String(), `"keyboard_step_percent"`)

	dir := t.TempDir()
	buf.Reset()
	require.NoError(t, printSchema(&buf, newConfigRenderer(), dir))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))
}

func TestPrintConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	var buf bytes.Buffer

	require.NoError(t, printConfigPath(&buf, newConfigRenderer(), path))
	assert.Contains(t, buf.String(), "not created yet")

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	buf.Reset()
	require.NoError(t, printConfigPath(&buf, newConfigRenderer(), path))
	assert.Contains(t, buf.String(), path)
	assert.NotContains(t, buf.String(), "not created yet")
}

func TestShowConfig_MissingFileIsNotCreated(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := t.TempDir()
	var buf bytes.Buffer

	require.NoError(t, showConfig(&buf, dir))

	assert.Contains(t, buf.String(), "[layout]")
	assert.NoFileExists(t, config.ConfigFileIn(dir))
	assert.NoFileExists(t, filepath.Join(dir, "config.schema.json"))
}

func TestInitConfig_ForceReplacesBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := config.ConfigFileIn(dir)
	require.NoError(t, os.WriteFile(path, []byte("[resize]\nkeyboard_step_percent = -1\n"), 0o644))

	require.NoError(t, initConfig(&bytes.Buffer{}, newConfigRenderer(), dir, true))

	mgr, err := config.NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Read())
	assert.Equal(t, config.DefaultConfig().Resize, mgr.Get().Resize)
}
