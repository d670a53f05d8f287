package internal

import (
	"fmt"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var getenvCmd = &cobra.Command{
	Use:   "env NAME",
	Short: "Print a variable and rerun when it changes",
	Long: `Env declares a rerun-if-env-changed trigger on NAME and then prints its
value. An unset variable prints nothing and is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runGetenv,
}

func init() {
	rootCmd.AddCommand(getenvCmd)
}

func runGetenv(cmd *cobra.Command, args []string) error {
	s := newScript(cmd)
	v, ok := s.EnvVar(args[0])
	if err := s.Err(); err != nil {
		return err
	}
	if !ok {
		log.Debugf("%s is not set", args[0])
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}
