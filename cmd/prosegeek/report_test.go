package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wizenheimer/prosegeek"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	reportOpts = reportOptions{}

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReport_Stdin(t *testing.T) {
	out, err := runCLI(t, "The cat sat. The cat ran fast.", "report")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Prose Geek Report: unsaved_file\n"))
	assert.Contains(t, out, "* **Total Words:** 7\n")
}

func TestReport_FileAndJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.md")
	require.NoError(t, os.WriteFile(path, []byte("**The** cat sat. The cat ran fast."), 0o644))

	out, err := runCLI(t, "", "report", "--json", path)
	require.NoError(t, err)

	var res prosegeek.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 7, res.CountWords)
	assert.Equal(t, 2, res.CountSentences)
	require.NotEmpty(t, res.TopWords)
	assert.Equal(t, "cat", res.TopWords[0].Word)
}

func TestReport_Settings(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("top_word_count: 1\ncolor_scheme: dark\n"), 0o644))

	out, err := runCLI(t, "The cat sat. The cat ran fast.", "report", "--settings", settings)
	require.NoError(t, err)
	assert.Contains(t, out, "### Top 1 frequently used words\n")
	assert.NotContains(t, out, "|2.|")
}

func TestReport_Errors(t *testing.T) {
	_, err := runCLI(t, "", "report")
	assert.True(t, errors.Is(err, prosegeek.ErrEmptyDocument), "got %v", err)

	_, err = runCLI(t, "text", "report", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("collocation_filter: 0\n"), 0o644))
	_, err = runCLI(t, "text", "report", "--settings", bad)
	var cerr *prosegeek.ConfigurationError
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Equal(t, "collocation_filter", cerr.Key)
}

func TestReadInput(t *testing.T) {
	raw, name, err := readInput(strings.NewReader("hello"), nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", raw)
	assert.Equal(t, prosegeek.UnsavedSourceName, name)

	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte("words"), 0o644))
	raw, name, err = readInput(nil, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "words", raw)
	assert.Equal(t, "draft.txt", name)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.TopWordCount)
	assert.True(t, cfg.FilterStopwords)
}
