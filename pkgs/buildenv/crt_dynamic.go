//go:build !crt_static

package buildenv

const crtStatic = false
