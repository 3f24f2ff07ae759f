package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/todo/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded on first use by LoadConfig. Tests may set it directly.
	Config *config.Config
}

// LoadConfig loads the config at ConfigPath once and caches it.
func (f *Flags) LoadConfig() (*config.Config, error) {
	if f.Config != nil {
		return f.Config, nil
	}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	f.Config = cfg
	return cfg, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todo", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/todo/todo.log
// On Linux: $XDG_STATE_HOME/todo/todo.log (defaults to ~/.local/state/todo/todo.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "todo", "todo.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "todo", "todo.log")
	}

	return filepath.Join(home, ".local", "state", "todo", "todo.log")
}
