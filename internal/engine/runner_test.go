package engine

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/roman-converter/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "results")

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestProcess(t *testing.T) {
	cases := []struct {
		line    string
		output  string
		wantErr string
	}{
		{"intToRoman 3497", "MMMCDXCVII", ""},
		{"romanToInt cv", "105", ""},
		{"romanToInt X1", "", "invalid characters: 1"},
		{"intToRoman abc", "", "cannot convert"},
		{"toHex 12", "", "unknown operation"},
		{"intToRoman", "", "expected"},
		{"intToRoman 1 2", "", "expected"},
	}
	for _, c := range cases {
		res := Process(7, c.line)
		assert.Equal(t, 7, res.Line)
		assert.Equal(t, c.output, res.Output, c.line)
		if c.wantErr == "" {
			assert.False(t, res.Failed(), "%s: %s", c.line, res.Error)
		} else {
			assert.Contains(t, res.Error, c.wantErr, c.line)
		}
	}
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	cfg := testConfig(t)
	in := strings.NewReader("# header\nintToRoman 37\n\nromanToInt MMXQ\nromanToInt IX\n")

	sum, err := Run(cfg, in)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 3, Succeeded: 2, Failed: 1}, sum)

	rows := readCSV(t, filepath.Join(cfg.OutputDir, cfg.OutputFile))
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"2", "intToRoman", "37", "XXXVII", "", "2024-01-02T03:04:05Z"}, rows[1])
	assert.Equal(t, "4", rows[2][0])
	assert.Equal(t, "invalid characters: Q", rows[2][4])
	assert.Equal(t, "9", rows[3][3])

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, cfg.JSONFile))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestRun_StopOnError(t *testing.T) {
	cfg := testConfig(t)
	cfg.StopOnError = true
	in := strings.NewReader("intToRoman 1\nintToRoman -1\nintToRoman 2\n")

	sum, err := Run(cfg, in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, Summary{Total: 2, Succeeded: 1, Failed: 1}, sum)

	rows := readCSV(t, filepath.Join(cfg.OutputDir, cfg.OutputFile))
	assert.Len(t, rows, 3)
}

func TestRun_BadOutputDir(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	cfg.OutputDir = filepath.Join(blocker, "sub")

	_, err := Run(cfg, strings.NewReader("intToRoman 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
}
