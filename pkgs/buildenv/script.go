package buildenv

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/goplus/buildenv/pkgs/triple"
	"golang.org/x/mod/semver"
)

// DefaultPrefix is the directive prefix understood by Cargo.
const DefaultPrefix = "cargo"

// Script is the view a build script has of its orchestrator: the
// environment it was started with and the stream its directives go to.
//
// A Script is not safe for concurrent use.
type Script struct {
	Env    Env       // Source of environment variables
	Out    io.Writer // Directive stream, usually stdout
	Prefix string    // Directive prefix; DefaultPrefix if empty

	err error // first write error on Out
}

// New returns a Script reading the process environment and writing
// directives to os.Stdout.
func New() *Script {
	return &Script{
		Env:    ProcessEnv(),
		Out:    os.Stdout,
		Prefix: DefaultPrefix,
	}
}

// lookup returns the value of name if it is set and valid UTF-8.
func (s *Script) lookup(op, name string) (string, error) {
	v, ok := s.Env.Lookup(name)
	if !ok {
		return "", &Error{Op: op, Var: name, Err: ErrMissingVar}
	}
	if !utf8.ValidString(v) {
		return "", &Error{Op: op, Var: name, Err: ErrInvalidText}
	}
	return v, nil
}

// OutputDir returns OUT_DIR, the directory build outputs should be placed in.
func (s *Script) OutputDir() (string, error) {
	return s.lookup("output directory", VarOutDir)
}

// CrateDir returns CARGO_MANIFEST_DIR, the directory containing the
// manifest of the package being built.
func (s *Script) CrateDir() (string, error) {
	return s.lookup("crate directory", VarManifestDir)
}

// EnvVar declares a rerun trigger on name, then returns its value. ok is
// false if the variable is unset or not valid UTF-8.
func (s *Script) EnvVar(name string) (value string, ok bool) {
	s.RerunIfEnvChanged(name)
	v, err := s.lookup("env var", name)
	if err != nil {
		return "", false
	}
	return v, true
}

// BuildRelease reports whether PROFILE is "release". It fails for any
// value other than "release" or "debug".
func (s *Script) BuildRelease() (bool, error) {
	p, err := s.Profile()
	if err != nil {
		return false, err
	}
	return p == Release, nil
}

// Profile returns the build profile named by PROFILE.
func (s *Script) Profile() (Profile, error) {
	v, err := s.lookup("build profile", VarProfile)
	if err != nil {
		return "", err
	}
	p, err := ParseProfile(v)
	if err != nil {
		return "", &Error{Op: "build profile", Var: VarProfile, Err: err}
	}
	return p, nil
}

// PackageVersion returns CARGO_PKG_VERSION. The version must be a valid
// semantic version; the leading "v" is optional.
func (s *Script) PackageVersion() (string, error) {
	v, err := s.lookup("package version", VarPackageVersion)
	if err != nil {
		return "", err
	}
	canonical := v
	if len(canonical) == 0 || canonical[0] != 'v' {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return "", &Error{Op: "package version", Var: VarPackageVersion, Err: fmt.Errorf("%w: %q", ErrInvalidVersion, v)}
	}
	return v, nil
}

// Target parses TARGET, the triple being compiled for.
func (s *Script) Target() (triple.Target, error) {
	v, err := s.lookup("target", VarTarget)
	if err != nil {
		return triple.Target{}, err
	}
	t, err := triple.Parse(v)
	if err != nil {
		return triple.Target{}, &Error{Op: "target", Var: VarTarget, Err: err}
	}
	return t, nil
}

// Host parses HOST, the triple of the machine running the build. The raw
// value is printed as a "HOST: <value>" line before parsing.
func (s *Script) Host() (triple.Target, error) {
	v, err := s.lookup("host", VarHost)
	if err != nil {
		return triple.Target{}, err
	}
	s.println("HOST: " + v)
	t, err := triple.Parse(v)
	if err != nil {
		return triple.Target{}, &Error{Op: "host", Var: VarHost, Err: err}
	}
	return t, nil
}
