package internal

import (
	"fmt"
	"io"

	"github.com/goplus/buildenv/pkgs/triple"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	targetTriplet bool
	targetLibs    []string
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Print the triple being compiled for",
	Long: `Target parses TARGET and prints it. With --lib it prints the static
library file name of each given library on that target instead.`,
	Args: cobra.NoArgs,
	RunE: runTarget,
}

func init() {
	targetCmd.Flags().BoolVar(&targetTriplet, "triplet", false, "Drop the ABI component")
	targetCmd.Flags().StringArrayVar(&targetLibs, "lib", nil, "Print the static library file name of `name`")
	rootCmd.AddCommand(targetCmd)
}

func runTarget(cmd *cobra.Command, args []string) error {
	s := newScript(cmd)
	t, err := s.Target()
	if err != nil {
		return err
	}
	return printTarget(cmd.OutOrStdout(), t)
}

// printTarget prints t according to the --triplet and --lib flags.
func printTarget(w io.Writer, t triple.Target) error {
	log.Debugf("target %s: windows=%v", t, t.IsWindows())
	if len(targetLibs) > 0 {
		for _, name := range targetLibs {
			if _, err := fmt.Fprintln(w, t.LibraryFilename(name)); err != nil {
				return err
			}
		}
		return nil
	}
	if targetTriplet {
		_, err := fmt.Fprintln(w, t.Triplet())
		return err
	}
	_, err := fmt.Fprintln(w, t)
	return err
}
