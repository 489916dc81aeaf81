package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mtustin-handy/bruce/pkg/config"
)

func TestCheck_KeepsCurrentGeneratedFile(t *testing.T) {
	root := makeTreeRoot(t, "1.0.0\n")
	path := filepath.Join(root, "src", "version.c")
	if err := os.WriteFile(path, []byte(`const char bruce_build_id[] = "1.0.0";`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCheck(root, config.Default(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected generated file to be kept: %v", err)
	}
}

func TestCheck_DeletesStaleGeneratedFile(t *testing.T) {
	root := makeTreeRoot(t, "1.0.0\n")
	path := filepath.Join(root, "src", "version.c")
	if err := os.WriteFile(path, []byte(`const char bruce_build_id[] = "0.9.9";`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCheck(root, config.Default(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected stale generated file to be deleted")
	}
}

func TestCheck_MissingGeneratedFileSucceeds(t *testing.T) {
	root := makeTreeRoot(t, "1.0.0\n")
	path := filepath.Join(root, "src", "version.c")

	if err := runCheck(root, config.Default(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
