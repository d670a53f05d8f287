package buildenv

import "github.com/goplus/buildenv/internal/env"

// Env is a read-only view of environment variables.
type Env interface {
	Lookup(name string) (string, bool)
}

// MapEnv is an Env backed by a map, handy for tests and for scripts that
// compute their environment.
type MapEnv map[string]string

// Lookup implements Env.
func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ProcessEnv returns the Env of the current process.
func ProcessEnv() Env {
	return env.OS{}
}

// Variables read by Script.
const (
	VarOutDir         = "OUT_DIR"
	VarManifestDir    = "CARGO_MANIFEST_DIR"
	VarTarget         = "TARGET"
	VarHost           = "HOST"
	VarProfile        = "PROFILE"
	VarPackageVersion = "CARGO_PKG_VERSION"
)

// KnownVars lists every variable Script reads on its own.
var KnownVars = []string{
	VarOutDir, VarManifestDir, VarTarget, VarHost, VarProfile, VarPackageVersion,
}
