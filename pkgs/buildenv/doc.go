// Package buildenv helps build scripts talk to their orchestrator.
//
// A build script is started with its configuration in environment variables
// (OUT_DIR, TARGET, PROFILE, ...) and answers with directive lines on
// stdout:
//
//	cargo:rustc-link-lib=z
//	cargo:rerun-if-env-changed=ZLIB_DIR
//
// Script reads the former and writes the latter. Required variables that
// are missing or malformed are reported as errors; deciding to abort is
// left to the caller.
package buildenv
