package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadFileMissing(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(write(t, "precision: 6\nlog_level: debug\nsolutes: /tmp/solutes.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, c.Precision)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/tmp/solutes.yaml", c.Solutes)
}

func TestLoadFilePartial(t *testing.T) {
	c, err := LoadFile(write(t, "precision: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Precision)
	assert.Equal(t, "info", c.LogLevel, "unset fields keep defaults")
}

func TestLoadFileInvalid(t *testing.T) {
	_, err := LoadFile(write(t, "precision: 40\n"))
	assert.Error(t, err)

	_, err = LoadFile(write(t, "log_level: loud\n"))
	assert.Error(t, err)

	_, err = LoadFile(write(t, "precision: [\n"))
	assert.Error(t, err)
}

func TestDir(t *testing.T) {
	d, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "phcalc", filepath.Base(d))
}
