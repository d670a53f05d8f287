package triple

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by Parse when a triple does not carry at least
// an architecture, a vendor and a system.
var ErrMalformed = errors.New("malformed target triple")

// -----------------------------------------------------------------------------

// Target represents a platform triple in the form
//
//	<arch>-<vendor>-<system>[-<abi>]
//
// Architecture, Vendor and System are never empty. An empty ABI means the
// triple had no fourth component.
type Target struct {
	Architecture string
	Vendor       string
	System       string
	ABI          string
}

// Parse parses a hyphen-delimited triple such as "x86_64-pc-windows-msvc".
// Components after the fourth are discarded.
func Parse(s string) (Target, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return Target{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	for _, p := range parts[:3] {
		if p == "" {
			return Target{}, fmt.Errorf("%w: %q has an empty component", ErrMalformed, s)
		}
	}
	t := Target{
		Architecture: parts[0],
		Vendor:       parts[1],
		System:       parts[2],
	}
	if len(parts) > 3 {
		t.ABI = parts[3]
	}
	return t, nil
}

// IsWindows reports whether the target system is exactly "windows".
func (t Target) IsWindows() bool {
	return t.System == "windows"
}

// LibraryFilename returns the static library file name for name on this
// target: "name.lib" on Windows, "libname.a" elsewhere.
func (t Target) LibraryFilename(name string) string {
	if t.IsWindows() {
		return name + ".lib"
	}
	return "lib" + name + ".a"
}

// Triplet returns "arch-vendor-system", dropping the ABI.
func (t Target) Triplet() string {
	return t.Architecture + "-" + t.Vendor + "-" + t.System
}

// Parts returns the target components in order. The ABI is included only
// when present.
func (t Target) Parts() []string {
	if t.ABI == "" {
		return []string{t.Architecture, t.Vendor, t.System}
	}
	return []string{t.Architecture, t.Vendor, t.System, t.ABI}
}

func (t Target) String() string {
	if t.ABI == "" {
		return t.Triplet()
	}
	return t.Triplet() + "-" + t.ABI
}

// -----------------------------------------------------------------------------
