package buildenv

// TargetCRTStatic reports whether this package was built with the
// crt_static build tag, i.e. whether the helper itself links the C runtime
// statically. It does not look at TARGET or any other variable of the
// running script.
func TargetCRTStatic() bool {
	return crtStatic
}
