// Package buildid implements build version resolution, template
// substitution, and staleness checking for generated source files that
// carry an embedded build identifier.
package buildid

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mtustin-handy/bruce/internal/gitver"
	"github.com/mtustin-handy/bruce/pkg/config"
	"github.com/rs/zerolog/log"
)

// DescribeFunc queries version control for a descriptive tag.
type DescribeFunc func(root string) (string, error)

// Resolver determines the current build version for a tree root. The
// sentinel version file wins when present; otherwise version control is
// asked for a descriptive tag. Either way the result is normalized and
// never empty.
type Resolver struct {
	Root     string
	Sentinel string       // sentinel filename, relative to Root
	Describe DescribeFunc // version-control query; gitver.Describe unless overridden in tests
}

// NewResolver returns a Resolver for root configured per cfg.
func NewResolver(root string, cfg config.Config) *Resolver {
	return &Resolver{
		Root:     root,
		Sentinel: cfg.SentinelFile,
		Describe: gitver.Describe,
	}
}

// Resolve returns the normalized build version. A sentinel file containing
// only blank lines is treated the same as an absent one, so the fallback
// to version control still applies.
func (r *Resolver) Resolve() (string, error) {
	v, err := r.readSentinel()
	if err != nil {
		return "", err
	}
	if v != "" {
		log.Debug().Str("version", v).Str("source", "sentinel").Msg("resolved version")
		return Normalize(v), nil
	}

	tag, err := r.Describe(r.Root)
	if err != nil {
		return "", err
	}
	log.Debug().Str("version", tag).Str("source", "git").Msg("resolved version")
	return Normalize(tag), nil
}

// readSentinel returns the first non-blank trimmed line of the sentinel
// file, or "" when the file is absent or blank. Read failures other than
// "does not exist" are fatal to the caller.
func (r *Resolver) readSentinel() (string, error) {
	f, err := os.Open(filepath.Join(r.Root, r.Sentinel))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", r.Sentinel, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", r.Sentinel, err)
	}
	return "", nil
}

// Normalize replaces every hyphen with a dot, turning a descriptive tag
// like "1.0.0-1-g624d0b3" into "1.0.0.1.g624d0b3" so that packaging tools
// which reject hyphens in version strings accept it. Idempotent.
func Normalize(version string) string {
	return strings.ReplaceAll(version, "-", ".")
}
