package space

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_MainID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoRoot := t.TempDir()
	clonesDir := t.TempDir()

	target, err := Resolve(ctx, "1", repoRoot, clonesDir, "space-")
	if err != nil {
		t.Fatalf("Resolve(1): %v", err)
	}
	if !target.IsMain {
		t.Error("IsMain = false, want true")
	}
	if target.Path != repoRoot {
		t.Errorf("Path = %q, want %q", target.Path, repoRoot)
	}
	if target.Name != "main" {
		t.Errorf("Name = %q, want main", target.Name)
	}
	// The temp dir is not a git repository, so the branch is unknowable.
	if target.Branch != "unknown" {
		t.Errorf("Branch = %q, want unknown", target.Branch)
	}
}

func TestResolve_MainIgnoresClonesDirContents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoRoot := t.TempDir()
	clonesDir := t.TempDir()

	// A clone that happens to sanitize to "1" must not shadow main.
	if err := os.MkdirAll(filepath.Join(clonesDir, "space-1"), 0755); err != nil {
		t.Fatal(err)
	}

	target, err := Resolve(ctx, "1", repoRoot, clonesDir, "space-")
	if err != nil {
		t.Fatalf("Resolve(1): %v", err)
	}
	if !target.IsMain || target.Path != repoRoot {
		t.Errorf("Resolve(1) = %+v, want main repo", target)
	}
}

func TestResolve_SanitizedLookupKeepsDisplayName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoRoot := t.TempDir()
	clonesDir := t.TempDir()

	dir := filepath.Join(clonesDir, "space-feat-login")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	target, err := Resolve(ctx, "feat/login", repoRoot, clonesDir, "space-")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if target.IsMain {
		t.Error("IsMain = true, want false")
	}
	if target.Path != dir {
		t.Errorf("Path = %q, want %q", target.Path, dir)
	}
	if target.Name != "feat/login" {
		t.Errorf("Name = %q, want the original identifier", target.Name)
	}
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, err := Resolve(ctx, "missing", t.TempDir(), t.TempDir(), "space-")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if notFound.Identifier != "missing" {
		t.Errorf("Identifier = %q, want missing", notFound.Identifier)
	}
}

func TestResolve_FileIsNotATarget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clonesDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(clonesDir, "space-x"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Resolve(ctx, "x", t.TempDir(), clonesDir, "space-"); err == nil {
		t.Error("expected error for regular file at target path")
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		prefix string
		want   string
	}{
		{"/clones/space-feat", "space-", "feat"},
		{"/clones/feat", "", "feat"},
		{"/clones/other-feat", "space-", "other-feat"},
	}
	for _, tt := range tests {
		if got := Name(tt.path, tt.prefix); got != tt.want {
			t.Errorf("Name(%q, %q) = %q, want %q", tt.path, tt.prefix, got, tt.want)
		}
	}
}

func TestStatus_Missing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := Status(ctx, filepath.Join(t.TempDir(), "gone")); got != "missing" {
		t.Errorf("Status = %q, want missing", got)
	}
}
