package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
		wantMsg   string
	}{
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.Theme = "neon" },
			wantField: "theme",
			wantMsg:   "unknown theme",
		},
		{
			name:      "invalid filter",
			mutate:    func(c *Config) { c.InitialFilter = "SHOW_SOME" },
			wantField: "initial_filter",
			wantMsg:   "invalid visibility filter",
		},
		{
			name:      "negative char limit",
			mutate:    func(c *Config) { c.Input.CharLimit = -1 },
			wantField: "input.char_limit",
			wantMsg:   "zero or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "neon"
	cfg.InitialFilter = "nope"
	cfg.Input.CharLimit = -5

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.Validate(), &fieldErrs)
	assert.Len(t, fieldErrs, 3)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidateFile(""))
	assert.NoError(t, ValidateFile(dir+"/missing.yaml"))

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, ValidateFile(dir), &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}
