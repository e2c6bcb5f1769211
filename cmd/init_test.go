package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// runInit executes `init` with args inside a fresh temp dir and returns the
// dir and the command output.
func runInit(t *testing.T, existing string, args ...string) (string, string, error) {
	t.Helper()

	resetConfig(t)
	initForceFlag = false

	tempDir := t.TempDir()
	if existing != "" {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte(existing), 0o644))
	}

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))

	err = cmd.Execute()

	return tempDir, out.String(), err
}

func readConfigFile(t *testing.T, dir string) map[string]any {
	t.Helper()

	contents, err := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &doc))

	return doc
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	dir, out, err := runInit(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+configFileName)

	doc := readConfigFile(t, dir)

	selector, ok := doc["selector"].(map[string]any)
	require.True(t, ok, "selector section missing: %v", doc)
	assert.Equal(t, "fzf", selector["command"])

	run, ok := doc["run"].(map[string]any)
	require.True(t, ok, "run section missing: %v", doc)
	assert.Equal(t, 60, run["timeout"])
	assert.Equal(t, 0, run["parallel"])
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	dir, _, err := runInit(t, "existing: true\n")
	require.Error(t, err)

	contents, readErr := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, readErr)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	dir, _, err := runInit(t, "existing: true\n", "--force")
	require.NoError(t, err)

	doc := readConfigFile(t, dir)
	assert.Contains(t, doc, "compiler")
	assert.Equal(t, 1, doc[configVersionKey])
}

func TestInitCmd_RecordsFlagValues(t *testing.T) {
	dir, _, err := runInit(t, "", "--timeout", "15")
	require.NoError(t, err)

	run, ok := readConfigFile(t, dir)["run"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 15, run["timeout"])
	assert.Equal(t, 15, viper.GetInt(runTimeoutKey))
}
