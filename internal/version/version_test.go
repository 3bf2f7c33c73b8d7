package version

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestResolve_VersionAndCommit(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, VersionFile, "1.2.3\n")
	write(t, dir, CommitIDFile, "abc1234\n")

	if got := Resolve(dir); got != "1.2.3 (abc1234)" {
		t.Fatalf("resolved %q", got)
	}
}

func TestResolve_VersionOnly(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, VersionFile, "1.2.3")

	if got := Resolve(dir); got != "1.2.3" {
		t.Fatalf("resolved %q", got)
	}
}

func TestResolve_NoFiles(t *testing.T) {
	if got := Resolve(t.TempDir()); got != "dev" {
		t.Fatalf("resolved %q, want dev", got)
	}
}
