package buildid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Substitute copies template text from in to out, replacing every
// occurrence of token with version. The transform is line-buffered so it
// works on an unbounded stream; every byte outside a token occurrence
// passes through unchanged, including the absence of a final newline.
func Substitute(in io.Reader, out io.Writer, token, version string) error {
	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if _, werr := writer.WriteString(strings.ReplaceAll(line, token, version)); werr != nil {
				return fmt.Errorf("write output: %w", werr)
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read template: %w", err)
		}
	}

	return writer.Flush()
}
