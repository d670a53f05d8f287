package internal

import (
	"fmt"

	"github.com/goplus/buildenv/pkgs/buildenv"
	"github.com/spf13/cobra"
)

var pkgVersionCmd = &cobra.Command{
	Use:   "pkg-version",
	Short: "Print the version of the package being built",
	Long:  `Pkg-version prints CARGO_PKG_VERSION after checking it is a semantic version.`,
	Args:  cobra.NoArgs,
	RunE:  runPkgVersion,
}

var crtStaticCmd = &cobra.Command{
	Use:   "crt-static",
	Short: "Report whether buildenv was built with the crt_static tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), buildenv.TargetCRTStatic())
		return err
	},
}

func init() {
	rootCmd.AddCommand(pkgVersionCmd)
	rootCmd.AddCommand(crtStaticCmd)
}

func runPkgVersion(cmd *cobra.Command, args []string) error {
	v, err := newScript(cmd).PackageVersion()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}
