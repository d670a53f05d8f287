package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCMake bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the build profile",
	Long:  `Profile prints PROFILE, failing unless it is "release" or "debug".`,
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().BoolVar(&profileCMake, "cmake", false, "Print the matching CMAKE_BUILD_TYPE instead")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	p, err := newScript(cmd).Profile()
	if err != nil {
		return err
	}
	if profileCMake {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), p.CMakeBuildType())
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
	return err
}
