package internal

import (
	"github.com/spf13/cobra"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Print the triple of the build machine",
	Long: `Host parses HOST and prints it after the "HOST: <value>" line.
It accepts the same --triplet and --lib flags as target.`,
	Args: cobra.NoArgs,
	RunE: runHost,
}

func init() {
	hostCmd.Flags().BoolVar(&targetTriplet, "triplet", false, "Drop the ABI component")
	hostCmd.Flags().StringArrayVar(&targetLibs, "lib", nil, "Print the static library file name of `name`")
	rootCmd.AddCommand(hostCmd)
}

func runHost(cmd *cobra.Command, args []string) error {
	s := newScript(cmd)
	t, err := s.Host()
	if err != nil {
		return err
	}
	if err := s.Err(); err != nil {
		return err
	}
	return printTarget(cmd.OutOrStdout(), t)
}
