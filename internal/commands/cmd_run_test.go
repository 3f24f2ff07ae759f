package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/pkg/logutils"
)

func testFlags() *Flags {
	cfg := config.DefaultConfig()
	return &Flags{Config: &cfg}
}

func runCommand(t *testing.T, cmd *RunCmd, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "todo",
		Writer: &buf,
	}
	cmd.Register(app)

	err := app.Run(context.Background(), append([]string{"todo", "run"}, args...))
	return buf.String(), err
}

func decodeResults(t *testing.T, out string) []RunResult {
	t.Helper()

	var results []RunResult
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r RunResult
		require.NoError(t, json.Unmarshal([]byte(line), &r), "line: %s", line)
		results = append(results, r)
	}
	return results
}

func TestRun_Golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "run_glob", args: []string{"testdata/scripts/*.yaml"}},
		{name: "run_filter_all", args: []string{"--filter", "all", "testdata/scripts/groceries.yaml"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, NewRunCmd(testFlags()), tt.args...)
			require.NoError(t, err)

			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestRun_DoubleStarAndDuplicates(t *testing.T) {
	out, err := runCommand(t, NewRunCmd(testFlags()),
		"testdata/scripts/**/*.yaml",
		"testdata/scripts/chores.yaml",
	)
	require.NoError(t, err)

	results := decodeResults(t, out)
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Script)
	}

	assert.Equal(t, []string{"chores", "groceries", "errand"}, names)
}

func TestRun_FileFlag(t *testing.T) {
	out, err := runCommand(t, NewRunCmd(testFlags()), "-f", "testdata/unnamed.json")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, "unnamed", results[0].Script)
	assert.Equal(t, 2, results[0].Dispatched)
	require.Len(t, results[0].Items, 1)
	assert.Equal(t, "call mom", results[0].Items[0].Text)
	assert.False(t, results[0].Items[0].Completed, "toggling an unknown id is a no-op")
}

func TestRun_Stdin(t *testing.T) {
	f, err := os.Open("testdata/unnamed.json")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cmd := NewRunCmd(testFlags())
	cmd.reader.Stdin = f

	out, err := runCommand(t, cmd)
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, "stdin", results[0].Script)
}

func TestRun_InitialFilterFromConfig(t *testing.T) {
	flags := testFlags()
	flags.Config.InitialFilter = "SHOW_ACTIVE"

	out, err := runCommand(t, NewRunCmd(flags), "-f", "testdata/unnamed.json")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, "SHOW_ACTIVE", string(results[0].VisibilityFilter))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "no match",
			args:    []string{"testdata/nothing/*.yaml"},
			wantErr: "no scripts match",
		},
		{
			name:    "invalid script",
			args:    []string{"testdata/invalid/broken.yaml"},
			wantErr: "steps[0].type",
		},
		{
			name:    "bad filter flag",
			args:    []string{"--filter", "sometimes", "testdata/scripts/groceries.yaml"},
			wantErr: "invalid visibility filter",
		},
		{
			name:    "missing file",
			args:    []string{"-f", "testdata/missing.yaml"},
			wantErr: "open file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, NewRunCmd(testFlags()), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestRun_LogLinesCarryRunID(t *testing.T) {
	var logs bytes.Buffer
	prev := log.Logger
	log.Logger = logutils.NewWithWriter(&logs, zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })

	_, err := runCommand(t, NewRunCmd(testFlags()), "testdata/scripts/groceries.yaml", "testdata/scripts/chores.yaml")
	require.NoError(t, err)

	runIDs := map[string]string{}
	dispatched := 0
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line: %s", line)

		runID, _ := entry["run_id"].(string)
		script, _ := entry["script"].(string)
		require.NotEmpty(t, runID, "line: %s", line)
		require.NotEmpty(t, script, "line: %s", line)

		if prevID, ok := runIDs[script]; ok {
			assert.Equal(t, prevID, runID, "one run id per script")
		}
		runIDs[script] = runID

		if entry["message"] == "action dispatched" {
			dispatched++
		}
	}

	assert.Equal(t, 9, dispatched)
	require.Len(t, runIDs, 2)
	assert.NotEqual(t, runIDs["groceries"], runIDs["chores"])
}
