package paths

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/garymjr/spaces/internal/config"
)

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "feature", "feature"},
		{"slash", "feat/login", "feat-login"},
		{"backslash", `feat\login`, "feat-login"},
		{"spaces", "my branch name", "my-branch-name"},
		{"shell chars", `a:b*c?d"e<f>g|h#i`, "a-b-c-d-e-f-g-h-i"},
		{"leading trailing", "/feat/", "feat"},
		{"all hostile", "///", ""},
		{"unicode kept", "fëature-ümlaut", "fëature-ümlaut"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeName_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"feat/login", "a b c", "--x--", "already-clean", "w#1: test?"}
	for _, in := range inputs {
		once := SanitizeName(in)
		twice := SanitizeName(once)
		if once != twice {
			t.Errorf("SanitizeName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	if got := ExpandHome("~"); got != home {
		t.Errorf("ExpandHome(~) = %q, want %q", got, home)
	}
	if got, want := ExpandHome("~/x/y"), filepath.Join(home, "x", "y"); got != want {
		t.Errorf("ExpandHome(~/x/y) = %q, want %q", got, want)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %q", got)
	}
	if got := ExpandHome("rel/path"); got != "rel/path" {
		t.Errorf("ExpandHome(rel/path) = %q", got)
	}
}

// isolateGitConfig keeps the host's git config out of lookups.
func isolateGitConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
}

func TestClonesDir_Defaults(t *testing.T) {
	isolateGitConfig(t)
	t.Setenv(EnvClonesDir, "")

	ctx := context.Background()
	repoRoot := filepath.Join(t.TempDir(), "myrepo")
	if err := os.MkdirAll(repoRoot, 0755); err != nil {
		t.Fatal(err)
	}

	res := config.NewResolver(config.NewGitStore(repoRoot), nil)
	got := ClonesDir(ctx, res, repoRoot)
	want := filepath.Join(filepath.Dir(repoRoot), "myrepo-clones")
	if got != want {
		t.Errorf("ClonesDir = %q, want %q", got, want)
	}
}

func TestClonesDir_EnvOverride(t *testing.T) {
	isolateGitConfig(t)
	t.Setenv(EnvClonesDir, "/somewhere/else")

	ctx := context.Background()
	repoRoot := t.TempDir()
	res := config.NewResolver(config.NewGitStore(repoRoot), nil)
	if got := ClonesDir(ctx, res, repoRoot); got != "/somewhere/else" {
		t.Errorf("ClonesDir = %q, want /somewhere/else", got)
	}
}

func TestMirrorDir_Default(t *testing.T) {
	isolateGitConfig(t)
	t.Setenv(EnvMirrorsDir, "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	ctx := context.Background()
	repoRoot := filepath.Join(t.TempDir(), "myrepo")
	if err := os.MkdirAll(repoRoot, 0755); err != nil {
		t.Fatal(err)
	}

	res := config.NewResolver(config.NewGitStore(repoRoot), nil)
	got := MirrorDir(ctx, res, repoRoot)
	want := filepath.Join(home, ".cache", "spaces", "mirrors", "myrepo")
	if got != want {
		t.Errorf("MirrorDir = %q, want %q", got, want)
	}
}

func TestResolveDir(t *testing.T) {
	t.Parallel()

	if got := resolveDir("/abs", "/repo"); got != "/abs" {
		t.Errorf("resolveDir(/abs) = %q", got)
	}
	if got, want := resolveDir("nested/clones", "/repo"), filepath.Join("/repo", "nested", "clones"); got != want {
		t.Errorf("resolveDir(relative) = %q, want %q", got, want)
	}
}
