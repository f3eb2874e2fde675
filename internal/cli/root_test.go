package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{Config: DefaultConfig(), Out: out, Err: &bytes.Buffer{}}, out
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd_RendersChart(t *testing.T) {
	input := writeInput(t, "*Phase 1\n0, 3, Task A\n3, 6, Task B\n")
	output := filepath.Join(t.TempDir(), "chart.png")

	app, out := newTestApp()
	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{"-o", output, input})

	require.NoError(t, cmd.Execute())

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Parsing "+input)
	assert.Contains(t, out.String(), "Saving to "+output)
	assert.Contains(t, out.String(), "Done.")
}

func TestRootCmd_DefaultOutputPath(t *testing.T) {
	input := writeInput(t, "*Phase 1\n0, 3, Task A\n3, 6, Task B\n")
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(oldwd) })

	app, _ := newTestApp()
	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{input})

	require.NoError(t, cmd.Execute())

	_, err = os.Stat("gantt.png")
	require.NoError(t, err, "default output is gantt.png in the working directory")
}

func TestRootCmd_WidthHeightFlags(t *testing.T) {
	input := writeInput(t, "*S\n1, 2, a\n")
	output := filepath.Join(t.TempDir(), "tall.png")

	app, _ := newTestApp()
	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{"--width", "3", "--height", "6", "-o", output, input})

	require.NoError(t, cmd.Execute())

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dy(), img.Bounds().Dx(), "3x6 inch canvas should be taller than wide")
}

func TestRootCmd_FormatErrorNoOutput(t *testing.T) {
	input := writeInput(t, "*S\nabc, 3, label\n")
	output := filepath.Join(t.TempDir(), "chart.png")

	app, _ := newTestApp()
	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{"-o", output, input})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no partial output on parse failure")
}

func TestRootCmd_MissingInputFile(t *testing.T) {
	app, _ := newTestApp()
	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.csv")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

func TestRootCmd_RequiresFileArg(t *testing.T) {
	app, _ := newTestApp()
	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
