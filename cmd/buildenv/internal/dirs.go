package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Print the output and manifest directories",
	Long:  `Dirs prints OUT_DIR and CARGO_MANIFEST_DIR, one per line.`,
	Args:  cobra.NoArgs,
	RunE:  runDirs,
}

func init() {
	rootCmd.AddCommand(dirsCmd)
}

func runDirs(cmd *cobra.Command, args []string) error {
	s := newScript(cmd)
	outDir, err := s.OutputDir()
	if err != nil {
		return err
	}
	crateDir, err := s.CrateDir()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", outDir, crateDir)
	return err
}
