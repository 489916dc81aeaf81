package cmd

import (
	"fmt"
	"io"

	"github.com/mtustin-handy/bruce/internal/gitver"
	"github.com/mtustin-handy/bruce/pkg/buildid"
	"github.com/mtustin-handy/bruce/pkg/config"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the resolved build version",
	Long: `Resolve the current build version and print it to stdout.

The sentinel version file at the tree root wins when present; otherwise
the version is derived from git describe. Either way, hyphens are
normalized to dots before printing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		withCommit, _ := cmd.Flags().GetBool("commit")
		root, cfg, err := prepare(cmd)
		if err != nil {
			return err
		}
		return runQuery(cmd.OutOrStdout(), root, cfg, withCommit)
	},
}

func init() {
	queryCmd.Flags().Bool("commit", false, "Also print the abbreviated HEAD commit hash")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(out io.Writer, root string, cfg config.Config, withCommit bool) error {
	version, err := buildid.NewResolver(root, cfg).Resolve()
	if err != nil {
		return err
	}

	if withCommit {
		head, err := gitver.Head(root)
		if err != nil {
			return fmt.Errorf("resolve HEAD: %w", err)
		}
		fmt.Fprintf(out, "%s %s\n", version, head)
		return nil
	}

	fmt.Fprintln(out, version)
	return nil
}
