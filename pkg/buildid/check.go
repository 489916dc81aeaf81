package buildid

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// markerPattern matches a generated build-identifier line such as
//
//	const char bruce_build_id[] = "1.0.0";
//
// capturing the quoted version. Leading whitespace is allowed and the
// array identifier must end in build_id.
var markerPattern = regexp.MustCompile(`^\s*const\s+char\s+[A-Za-z0-9_]+build_id\[\]\s*=\s*"([^"]*)"\s*;`)

// Check inspects the generated file at path and deletes it when its
// embedded build identifier is absent or differs from version, so the
// build regenerates it. A missing file is left alone: it is not stale, it
// simply has not been generated yet.
//
// Lines are scanned in order and the first marker wins, even when its
// version is wrong; later markers are never consulted.
func Check(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	embedded := ""
	found := false
	for _, line := range strings.Split(string(data), "\n") {
		if m := markerPattern.FindStringSubmatch(line); m != nil {
			embedded = m[1]
			found = true
			break
		}
	}

	if found && embedded == version {
		log.Debug().Str("path", path).Str("version", embedded).Msg("generated file is current")
		return nil
	}

	log.Debug().Str("path", path).Str("embedded", embedded).Str("want", version).Msg("deleting stale generated file")
	// Another build process may have deleted the file already; that still
	// counts as success.
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
