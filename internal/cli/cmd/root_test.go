package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/domain/build"
)

func TestSkipsAppInit(t *testing.T) {
	assert.True(t, skipsAppInit(versionCmd))
	assert.True(t, skipsAppInit(genDocsCmd))
	assert.True(t, skipsAppInit(configShowCmd))
	assert.True(t, skipsAppInit(configInitCmd))
	assert.False(t, skipsAppInit(demoCmd))
	assert.False(t, skipsAppInit(dragCmd))
}

func TestVersionCmd(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"})
	t.Cleanup(func() { versionShort = false })
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	versionShort = true
	require.NoError(t, versionCmd.RunE(versionCmd, nil))
	assert.Contains(t, buf.String(), "splitter 1.2.3")

	versionShort = false
	buf.Reset()
	require.NoError(t, versionCmd.RunE(versionCmd, nil))
	assert.Contains(t, buf.String(), "abc123")
	assert.Contains(t, buf.String(), build.RepoURL())
}

func TestGenerateMarkdown(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	require.NoError(t, generateMarkdown(&buf, dir))

	assert.FileExists(t, filepath.Join(dir, "splitter.md"))
	assert.FileExists(t, filepath.Join(dir, "splitter_drag.md"))
	assert.FileExists(t, filepath.Join(dir, "splitter_config_init.md"))
	assert.Contains(t, buf.String(), "splitter_demo.md")
}

func TestGenerateManPages(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, generateManPages(&bytes.Buffer{}, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	assert.FileExists(t, filepath.Join(dir, "splitter.1"))
}

func TestDocsOutputDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	dir, err := docsOutputDir("", "man")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/data", "man", "man1"), dir)

	dir, err = docsOutputDir("out", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "out", dir)

	_, err = docsOutputDir("", "html")
	assert.Error(t, err)
}
