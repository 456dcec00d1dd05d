package space

import (
	"os"
	"path/filepath"
	"testing"
)

// newClone creates a fake space clone with a .git marker.
func newClone(t *testing.T, clonesDir, name string) string {
	t.Helper()
	dir := filepath.Join(clonesDir, name)
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestSafeRemove(t *testing.T) {
	t.Parallel()

	clonesDir := t.TempDir()
	dir := newClone(t, clonesDir, "space-x")

	if err := SafeRemove(dir, clonesDir); err != nil {
		t.Fatalf("SafeRemove: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("clone still exists after SafeRemove")
	}
}

func TestSafeRemove_OutsideClonesDir(t *testing.T) {
	t.Parallel()

	clonesDir := t.TempDir()
	outside := newClone(t, t.TempDir(), "space-x")

	if err := SafeRemove(outside, clonesDir); err == nil {
		t.Fatal("expected error for path outside clones dir")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("outside directory was deleted")
	}
}

func TestSafeRemove_ClonesDirItself(t *testing.T) {
	t.Parallel()

	clonesDir := t.TempDir()
	newClone(t, clonesDir, "space-x")

	if err := SafeRemove(clonesDir, clonesDir); err == nil {
		t.Fatal("expected error when target equals clones dir")
	}
	if _, err := os.Stat(clonesDir); err != nil {
		t.Error("clones dir was deleted")
	}
}

func TestSafeRemove_TraversalEscape(t *testing.T) {
	t.Parallel()

	clonesDir := t.TempDir()
	sibling := newClone(t, filepath.Dir(clonesDir), "victim")

	escape := filepath.Join(clonesDir, "..", filepath.Base(sibling))
	if err := SafeRemove(escape, clonesDir); err == nil {
		t.Fatal("expected error for .. traversal")
	}
	if _, err := os.Stat(sibling); err != nil {
		t.Error("sibling directory was deleted")
	}
}

func TestSafeRemove_MissingGitMarker(t *testing.T) {
	t.Parallel()

	clonesDir := t.TempDir()
	dir := filepath.Join(clonesDir, "space-x")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if err := SafeRemove(dir, clonesDir); err == nil {
		t.Fatal("expected error for directory without .git marker")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("directory was deleted despite failed safety check")
	}
}

func TestRemoveIfEmpty(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	empty := filepath.Join(base, "empty")
	if err := os.Mkdir(empty, 0755); err != nil {
		t.Fatal(err)
	}
	if !RemoveIfEmpty(empty) {
		t.Error("RemoveIfEmpty(empty) = false, want true")
	}

	full := filepath.Join(base, "full")
	if err := os.MkdirAll(filepath.Join(full, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if RemoveIfEmpty(full) {
		t.Error("RemoveIfEmpty(non-empty) = true, want false")
	}
	if _, err := os.Stat(full); err != nil {
		t.Error("non-empty directory was removed")
	}
}

func TestCloneDirs(t *testing.T) {
	t.Parallel()

	clonesDir := t.TempDir()
	newClone(t, clonesDir, "space-b")
	newClone(t, clonesDir, "space-a")
	newClone(t, clonesDir, "unrelated")
	if err := os.WriteFile(filepath.Join(clonesDir, "space-file"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	dirs := CloneDirs(clonesDir, "space-")
	if len(dirs) != 2 {
		t.Fatalf("CloneDirs returned %d entries, want 2: %v", len(dirs), dirs)
	}
	if filepath.Base(dirs[0]) != "space-a" || filepath.Base(dirs[1]) != "space-b" {
		t.Errorf("CloneDirs not sorted: %v", dirs)
	}

	names := Names(clonesDir, "space-")
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v, want [a b]", names)
	}
}

func TestCloneDirs_MissingDir(t *testing.T) {
	t.Parallel()

	if dirs := CloneDirs(filepath.Join(t.TempDir(), "nope"), "space-"); dirs != nil {
		t.Errorf("CloneDirs(missing) = %v, want nil", dirs)
	}
}
