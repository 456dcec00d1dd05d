package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUserConfig_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadUserConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for missing file, got %+v", cfg)
	}
}

func TestLoadUserConfig_Parse(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[defaults]
clones_dir = "~/Git/spaces"
clones_prefix = "space-"
default_branch = "develop"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{KeyClonesDir, "~/Git/spaces"},
		{KeyClonesPrefix, "space-"},
		{KeyDefaultBranch, "develop"},
		{KeyMirrorsDir, ""},
		{KeyCopyInclude, ""},
	}
	for _, tt := range tests {
		if got := cfg.Default(tt.key); got != tt.want {
			t.Errorf("Default(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadUserConfig_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("defaults = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadUserConfig(path); err == nil {
		t.Error("expected parse error for malformed file")
	}
}

func TestDefaultUserConfig_IsValidTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(DefaultUserConfig()), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadUserConfig(path); err != nil {
		t.Errorf("template should parse: %v", err)
	}
}
