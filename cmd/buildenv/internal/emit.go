package internal

import (
	"fmt"

	"github.com/goplus/buildenv/pkgs/buildenv"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	emitFiles      []string
	emitWarnings   []string
	emitLinks      []string
	emitLinkSearch []string
	emitRerun      []string
	emitRerunEnv   []string
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Print build directives",
	Long: `Emit prints the directives given by flags and by YAML directive files.
Directives are grouped by kind; within a kind, files come first in the order
given, followed by the flags.`,
	Args: cobra.NoArgs,
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringArrayVarP(&emitFiles, "file", "f", nil, "YAML directives file")
	emitCmd.Flags().StringArrayVar(&emitWarnings, "warn", nil, "Emit a warning")
	emitCmd.Flags().StringArrayVar(&emitLinks, "link", nil, "Link a library")
	emitCmd.Flags().StringArrayVar(&emitLinkSearch, "link-search", nil, "Add a native library search directory")
	emitCmd.Flags().StringArrayVar(&emitRerun, "rerun", nil, "Rerun when a file changes")
	emitCmd.Flags().StringArrayVar(&emitRerunEnv, "rerun-env", nil, "Rerun when a variable changes")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	d := &buildenv.Directives{}
	for _, file := range emitFiles {
		fd, err := buildenv.LoadDirectives(file)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		log.Debugf("loaded %s", file)
		d.Merge(fd)
	}
	d.Merge(&buildenv.Directives{
		Warnings:          emitWarnings,
		RerunIfChanged:    emitRerun,
		RerunIfEnvChanged: emitRerunEnv,
		LinkSearch:        emitLinkSearch,
		LinkLibs:          emitLinks,
	})
	return d.Apply(newScript(cmd))
}
