package buildenv

import "testing"

func TestTargetCRTStatic(t *testing.T) {
	// Only the build tag matters, not the environment of the script.
	t.Setenv("CARGO_CFG_TARGET_FEATURE", "crt-static")
	if got := TargetCRTStatic(); got != crtStatic {
		t.Errorf("TargetCRTStatic() = %v, want %v", got, crtStatic)
	}
}
