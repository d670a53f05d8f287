package internal

import (
	"bytes"
	"io"
	"testing"

	"github.com/goplus/buildenv/pkgs/buildenv"
)

// resetFlags restores every flag variable, since the command tree is shared
// between tests.
func resetFlags() {
	prefix = buildenv.DefaultPrefix
	verbose = false
	targetTriplet = false
	targetLibs = nil
	profileCMake = false
	emitFiles = nil
	emitWarnings = nil
	emitLinks = nil
	emitLinkSearch = nil
	emitRerun = nil
	emitRerunEnv = nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"target", "host", "profile", "dirs", "env", "pkg-version", "crt-static", "emit"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("subcommand %q is not registered", name)
		}
	}
}

func TestVerbose(t *testing.T) {
	t.Setenv(buildenv.VarProfile, "debug")
	out, err := execute(t, "profile", "-v")
	if err != nil {
		t.Fatalf("profile -v returned error: %v", err)
	}
	// Logs go to stderr, stdout only carries the answer.
	if out != "debug\n" {
		t.Errorf("output = %q, want %q", out, "debug\n")
	}
}
