package buildenv

import "fmt"

// Profile is the build profile a script runs under.
type Profile string

const (
	Release Profile = "release"
	Debug   Profile = "debug"
)

// ParseProfile accepts exactly "release" or "debug".
func ParseProfile(s string) (Profile, error) {
	switch p := Profile(s); p {
	case Release, Debug:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedProfile, s)
}

// CMakeBuildType returns the CMAKE_BUILD_TYPE matching the profile.
func (p Profile) CMakeBuildType() string {
	if p == Release {
		return "Release"
	}
	return "Debug"
}
