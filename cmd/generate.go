package cmd

import (
	"io"

	"github.com/mtustin-handy/bruce/pkg/buildid"
	"github.com/mtustin-handy/bruce/pkg/config"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Substitute the build version into template text",
	Long: `Read template text from stdin and write it to stdout with every
occurrence of the placeholder token replaced by the resolved build
version. All other bytes pass through unchanged, so the output is a
faithful copy of the template apart from the substitution.

Typical build-system usage:

  genversion generate < version.c.in > version.c`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, cfg, err := prepare(cmd)
		if err != nil {
			return err
		}
		return runGenerate(cmd.InOrStdin(), cmd.OutOrStdout(), root, cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(in io.Reader, out io.Writer, root string, cfg config.Config) error {
	version, err := buildid.NewResolver(root, cfg).Resolve()
	if err != nil {
		return err
	}
	return buildid.Substitute(in, out, cfg.Placeholder, version)
}
