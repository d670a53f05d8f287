package internal

import (
	"github.com/goplus/buildenv/internal/env"
	"github.com/goplus/buildenv/pkgs/buildenv"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	prefix  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "buildenv",
	Short: "buildenv reads build script variables and emits build directives",
	Long: `buildenv is the shell-side companion of a build script: it reads the
variables the orchestrator passes in (OUT_DIR, TARGET, PROFILE, ...) and prints
directives such as cargo:rustc-link-lib=z on stdout.`,
	Version:          "0.1.0",
	SilenceErrors:    true,
	SilenceUsage:     true,
	PersistentPreRun: setupLog,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", buildenv.DefaultPrefix, "directive prefix")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the build environment to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// A failing build script cannot go on, so any error ends the process.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

func setupLog(cmd *cobra.Command, args []string) {
	if !verbose {
		log.SetOutputLevel(log.Linfo)
		return
	}
	log.SetOutputLevel(log.Ldebug)
	vars := env.Collect(buildenv.KnownVars...)
	for _, k := range env.SortedKeys(vars) {
		log.Debugf("%s=%s", k, vars[k])
	}
}

// newScript returns a Script over the process environment that writes to
// the command's output.
func newScript(cmd *cobra.Command) *buildenv.Script {
	s := buildenv.New()
	s.Out = cmd.OutOrStdout()
	s.Prefix = prefix
	return s
}
