package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizinak/phcalc/config"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestConvertFromPH(t *testing.T) {
	out, err := runCLI(t, "convert", "--ph", "4.2")
	require.NoError(t, err)
	assert.Contains(t, out, "pH:        4.2")
	assert.Contains(t, out, "[H3O+]:")
	assert.Contains(t, out, "[OH-]:")
	assert.NotContains(t, out, "mol H2O", "per-volume block needs --volume")
}

func TestConvertWithVolume(t *testing.T) {
	out, err := runCLI(t, "convert", "--ph", "7", "--volume", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "mol H2O:   55")
	assert.Contains(t, out, "# H3O+:")
}

func TestConvertSourceConflicts(t *testing.T) {
	_, err := runCLI(t, "convert", "--ph", "4", "--h3o", "1e-3")
	assert.Error(t, err)

	_, err = runCLI(t, "convert")
	assert.Error(t, err)
}

func TestConvertOutOfRange(t *testing.T) {
	_, err := runCLI(t, "convert", "--ph", "22")
	assert.Error(t, err)

	_, err = runCLI(t, "convert", "--moles-h3o", "0.1", "--volume", "0")
	assert.Error(t, err)
}

func TestMix(t *testing.T) {
	out, err := runCLI(t, "mix", "2", "0.1", "2", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "pH:      2")
	assert.Contains(t, out, "volume:  0.2 L")
}

func TestMixOpposingClasses(t *testing.T) {
	_, err := runCLI(t, "mix", "2", "0.1", "12", "0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opposite sides of neutral")
}

func TestMixBadArgs(t *testing.T) {
	_, err := runCLI(t, "mix", "2", "0.1", "2")
	assert.Error(t, err)

	_, err = runCLI(t, "mix", "two", "0.1", "2", "0.1")
	assert.Error(t, err)
}

func TestSolutes(t *testing.T) {
	out, err := runCLI(t, "solutes", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 12)
	assert.Contains(t, out, "battery-acid")
	assert.Contains(t, out, "Drain Cleaner")
}

func TestRunScenario(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sc.yaml")
	doc := `solute: soda
steps:
  - action: add-solute
    volume: 0.2
  - action: add-water
    volume: 0.2
`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0644))

	out, err := runCLI(t, "run", p)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "add-solute")
	assert.Contains(t, lines[1], "add-water")
	assert.Contains(t, lines[0], "pH 2.5")
}

func TestNum(t *testing.T) {
	cfg = config.Default()

	assert.Equal(t, "2.5", num(2.5))
	assert.Equal(t, "0", num(0))
	assert.Equal(t, "55", num(55))
	assert.Equal(t, "1.000e-07", num(1e-7))
	assert.Equal(t, "6.022e+23", num(6.022e23))
}
