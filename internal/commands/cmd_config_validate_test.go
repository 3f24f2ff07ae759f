package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runConfigValidate(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "todo",
		Writer: &buf,
	}
	NewConfigValidateCmd(&Flags{ConfigPath: configPath}).Register(app)

	err := app.Run(context.Background(), append([]string{"todo", "config", "validate"}, args...))
	return buf.String(), err
}

func TestConfigValidate_OK(t *testing.T) {
	for _, path := range []string{"testdata/config/good.yaml", "testdata/config/missing.yaml", ""} {
		out, err := runConfigValidate(t, path)
		require.NoError(t, err, path)
		assert.Equal(t, "config ok\n", out)
	}
}

func TestConfigValidate_ReportsEveryField(t *testing.T) {
	out, err := runConfigValidate(t, "testdata/config/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 error(s) found")

	assert.Contains(t, out, "theme: unknown theme \"neon\"")
	assert.Contains(t, out, "initial_filter: invalid visibility filter \"sometimes\"")
	assert.Contains(t, out, "input.char_limit: must be zero or greater")
	assert.NotContains(t, out, "config ok")
}

func TestConfigValidate_JSON(t *testing.T) {
	out, err := runConfigValidate(t, "testdata/config/bad.yaml", "--format", "json")
	require.Error(t, err)

	var got validationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)

	fields := make([]string, 0, len(got.Errors))
	for _, e := range got.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"theme", "initial_filter", "input.char_limit"}, fields)
}

func TestConfigValidate_Directory(t *testing.T) {
	out, err := runConfigValidate(t, "testdata/config")
	require.Error(t, err)
	assert.Contains(t, out, "config_file:")
}
