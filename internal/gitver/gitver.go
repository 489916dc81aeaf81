// Package gitver queries version information from the git checkout that
// contains the tree root. The describe query goes through the system git
// binary so that local git configuration (replace refs, tag ordering) is
// honoured; repository detection and HEAD resolution use go-git.
package gitver

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"
)

// Describe returns the descriptive tag for the checkout containing root, as
// produced by git describe --tags: the bare tag on a tagged commit (e.g.
// "1.0.0"), or tag, commit distance, and abbreviated hash when the tree is
// ahead of the tag (e.g. "1.0.0-1-g624d0b3").
func Describe(root string) (string, error) {
	if _, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	}); err != nil {
		return "", fmt.Errorf("no sentinel version file and %s is not a git checkout: %w", root, err)
	}

	cmd := exec.Command("git", "describe", "--tags")
	cmd.Dir = root
	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git describe: %w\n%s", err, errOut.String())
	}

	tag := strings.TrimSpace(out.String())
	if tag == "" {
		return "", errors.New("git describe produced no output")
	}
	log.Debug().Str("tag", tag).Msg("described checkout")
	return tag, nil
}

// Head returns the abbreviated hash of the commit HEAD points at.
func Head(root string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("open git repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Hash().String()[:12], nil
}
