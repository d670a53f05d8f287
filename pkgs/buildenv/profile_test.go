package buildenv

import (
	"errors"
	"testing"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in        string
		want      Profile
		wantCMake string
		wantErr   bool
	}{
		{"release", Release, "Release", false},
		{"debug", Debug, "Debug", false},
		{"test", "", "", true},
		{"RELEASE", "", "", true},
		{" release", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProfile(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedProfile) {
					t.Fatalf("ParseProfile(%q) error = %v, want ErrUnsupportedProfile", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProfile(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseProfile(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got.CMakeBuildType() != tt.wantCMake {
				t.Errorf("CMakeBuildType() = %q, want %q", got.CMakeBuildType(), tt.wantCMake)
			}
		})
	}
}
