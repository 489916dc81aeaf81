package tree

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func makeRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "SConstruct"), []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestValidate_ValidRoot(t *testing.T) {
	dir := makeRoot(t)
	if err := Validate(dir, "SConstruct", "src"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MissingMarkerFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := Validate(dir, "SConstruct", "src")
	if !errors.Is(err, ErrNotRoot) {
		t.Errorf("expected ErrNotRoot, got: %v", err)
	}
}

func TestValidate_MissingSourceDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "SConstruct"), []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Validate(dir, "SConstruct", "src")
	if !errors.Is(err, ErrNotRoot) {
		t.Errorf("expected ErrNotRoot, got: %v", err)
	}
}

func TestValidate_MarkerIsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "SConstruct"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := Validate(dir, "SConstruct", "src")
	if !errors.Is(err, ErrNotRoot) {
		t.Errorf("expected ErrNotRoot for directory marker, got: %v", err)
	}
}

func TestValidate_SourceDirIsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "SConstruct"), []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "src"), []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Validate(dir, "SConstruct", "src")
	if !errors.Is(err, ErrNotRoot) {
		t.Errorf("expected ErrNotRoot for file source dir, got: %v", err)
	}
}

func TestValidate_CustomNames(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Makefile"), []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "lib"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Validate(dir, "Makefile", "lib"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
