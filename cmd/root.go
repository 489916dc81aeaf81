// Package cmd implements the genversion CLI commands using the cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/mtustin-handy/bruce/internal/logging"
	"github.com/mtustin-handy/bruce/internal/tree"
	"github.com/mtustin-handy/bruce/pkg/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "genversion",
	Short: "Build-time version stamping for generated source files",
	Long: `genversion resolves the current build version and stamps it into
generated source. The version comes from the sentinel version file at the
tree root when present (source-tarball builds), or from git describe when
building from a checkout. Hyphens in the version are normalized to dots so
downstream packaging tools accept it.

  genversion query            print the resolved version
  genversion generate         substitute the version into template text (stdin to stdout)
  genversion check <path>     delete <path> when its embedded version is stale

Every command must be pointed at the tree root (--root, default ".").`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logging.Setup(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Path to the tree root")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// prepare resolves the --root flag, loads the optional config file from the
// root, and validates that the root actually is the tree root. Validation
// happens once here so the individual commands can assume a sane root.
func prepare(cmd *cobra.Command) (string, config.Config, error) {
	root, _ := cmd.Flags().GetString("root")
	cfg, err := config.Load(root)
	if err != nil {
		return "", config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := tree.Validate(root, cfg.MarkerFile, cfg.SourceDir); err != nil {
		return "", config.Config{}, err
	}
	return root, cfg, nil
}
