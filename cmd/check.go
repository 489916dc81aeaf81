package cmd

import (
	"github.com/mtustin-handy/bruce/pkg/buildid"
	"github.com/mtustin-handy/bruce/pkg/config"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Delete a generated file whose embedded version is stale",
	Long: `Inspect the generated file at <path> for its embedded build
identifier line and delete the file when the identifier is absent or does
not match the resolved build version, so the build regenerates it.

A missing file is not an error: it simply has not been generated yet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, cfg, err := prepare(cmd)
		if err != nil {
			return err
		}
		return runCheck(root, cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(root string, cfg config.Config, path string) error {
	version, err := buildid.NewResolver(root, cfg).Resolve()
	if err != nil {
		return err
	}
	return buildid.Check(path, version)
}
