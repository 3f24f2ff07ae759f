package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todo/internal/core/config"
)

func TestInit_YesWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	var buf bytes.Buffer
	app := NewApp(&Flags{}, "test")
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"todo", "--config", path, "init", "--yes"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created config: "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Theme, cfg.Theme)

	buf.Reset()
	app = NewApp(&Flags{}, "test")
	app.Writer = &buf
	require.NoError(t, app.Run(context.Background(), []string{"todo", "--config", path, "config", "validate"}))
	assert.Contains(t, buf.String(), "config ok")
}

func TestInit_YesRefusesExistingWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	app := NewApp(&Flags{}, "test")
	app.Writer = &bytes.Buffer{}
	require.NoError(t, app.Run(context.Background(), []string{"todo", "--config", path, "init", "-y"}))

	app = NewApp(&Flags{}, "test")
	app.Writer = &bytes.Buffer{}
	err := app.Run(context.Background(), []string{"todo", "--config", path, "init", "-y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	app = NewApp(&Flags{}, "test")
	app.Writer = &bytes.Buffer{}
	require.NoError(t, app.Run(context.Background(), []string{"todo", "--config", path, "init", "-y", "-f"}))
	assert.FileExists(t, path+".bak")
}
