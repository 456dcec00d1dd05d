package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// UserConfig holds machine-wide defaults from ~/.config/spaces/config.toml.
// These sit below environment variables in the lookup order: they only
// apply when no git-config scope, settings file, or env var answers.
type UserConfig struct {
	Defaults UserDefaults `toml:"defaults"`
}

// UserDefaults mirrors the configurable path and branch settings.
type UserDefaults struct {
	ClonesDir     string `toml:"clones_dir"`
	ClonesPrefix  string `toml:"clones_prefix"`
	MirrorsDir    string `toml:"mirrors_dir"`
	DefaultBranch string `toml:"default_branch"`
}

// Default returns the user-level default for a config key, or "" when
// the key has no user default.
func (u *UserConfig) Default(key string) string {
	switch key {
	case KeyClonesDir:
		return u.Defaults.ClonesDir
	case KeyClonesPrefix:
		return u.Defaults.ClonesPrefix
	case KeyMirrorsDir:
		return u.Defaults.MirrorsDir
	case KeyDefaultBranch:
		return u.Defaults.DefaultBranch
	default:
		return ""
	}
}

// UserConfigPath returns the default location of the user config file.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "spaces", "config.toml"), nil
}

// LoadUserConfig reads a user config file.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only if the file exists but cannot be parsed.
func LoadUserConfig(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user config %s: %w", path, err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse user config %s: %w", path, err)
	}
	return &cfg, nil
}

const defaultUserConfig = `# spaces user configuration
#
# Values here are machine-wide fallbacks. Anything set through
# 'spaces config set', the repo's .spacesrc file, or a SPACES_*
# environment variable takes precedence over this file.

[defaults]
# Where space clones are created.
# Relative paths resolve against the repository root.
# clones_dir = "~/Git/spaces"

# Folder-name prefix for space clones inside the clones dir.
# clones_prefix = "space-"

# Where repository mirrors are cached.
# mirrors_dir = "~/.cache/spaces/mirrors"

# Base branch for new spaces when none is configured.
# "auto" derives it from origin/HEAD.
# default_branch = "auto"
`

// DefaultUserConfig returns the template written by 'spaces config init'.
func DefaultUserConfig() string {
	return defaultUserConfig
}

// InitUserConfig writes the default user config file, refusing to
// overwrite an existing one unless force is set. Returns the path.
func InitUserConfig(force bool) (string, error) {
	path, err := UserConfigPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultUserConfig), 0644); err != nil {
		return "", err
	}
	return path, nil
}
