// Package tree validates that a path points at the root of the source tree.
package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotRoot is returned when the given path does not look like the tree
// root. The caller surfaces it unchanged so the user sees the directive.
var ErrNotRoot = errors.New("not the tree root (run from the tree root or pass --root)")

// Validate checks that root contains both the marker file and the source
// directory that identify the tree root. It is called once at the command
// boundary; everything downstream may assume root is valid.
func Validate(root, markerFile, sourceDir string) error {
	info, err := os.Stat(filepath.Join(root, markerFile))
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: missing %s", ErrNotRoot, markerFile)
	}
	info, err = os.Stat(filepath.Join(root, sourceDir))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: missing %s/", ErrNotRoot, sourceDir)
	}
	return nil
}
