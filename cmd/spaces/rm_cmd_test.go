package main

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/paths"
)

// initRepo creates an empty git repository and returns its root.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	root := filepath.Join(t.TempDir(), "repo")
	if out, err := exec.Command("git", "init", "-q", root).CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}
	// git reports the physical path, so derived sibling dirs must too.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

// quietContext returns a context carrying a logger that discards output.
func quietContext() context.Context {
	return log.WithLogger(context.Background(), log.New(io.Discard, false, false))
}

func TestRmCmd_ContinuesPastSafetyFailure(t *testing.T) {
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
	t.Setenv(paths.EnvClonesDir, "")
	t.Setenv(paths.EnvClonesPrefix, "")

	root := initRepo(t)
	t.Chdir(root)

	clonesDir := filepath.Join(filepath.Dir(root), "repo-clones")

	// "bad" has no .git marker, so its removal is refused; "good" is a
	// plain clone-shaped directory that must still be removed afterwards.
	bad := filepath.Join(clonesDir, "bad")
	good := filepath.Join(clonesDir, "good")
	for _, dir := range []string{bad, filepath.Join(good, ".git")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	cmd := newRmCmd()
	cmd.SetContext(quietContext())
	if err := cmd.RunE(cmd, []string{"bad", "good"}); err != nil {
		t.Fatalf("rm: %v", err)
	}

	if _, err := os.Stat(bad); err != nil {
		t.Errorf("refused directory was deleted anyway: %v", err)
	}
	if _, err := os.Stat(good); !os.IsNotExist(err) {
		t.Error("later target was not removed after an earlier safety failure")
	}
}
