package buildenv

import (
	"io"
	"unicode/utf8"
)

// Directive keys understood by the orchestrator.
const (
	KeyWarning           = "warning"
	KeyRerunIfChanged    = "rerun-if-changed"
	KeyRerunIfEnvChanged = "rerun-if-env-changed"
	KeyLinkLib           = "rustc-link-lib"
	KeyLinkSearch        = "rustc-link-search"
)

// Err returns the first error met while writing to Out, if any. Once a
// write has failed, further output is dropped.
func (s *Script) Err() error {
	return s.err
}

func (s *Script) println(line string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.Out, line+"\n")
}

// emit writes one "<prefix>:<key>=<value>" line.
func (s *Script) emit(key, value string) {
	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	s.println(prefix + ":" + key + "=" + value)
}

// Warning asks the orchestrator to display msg as a warning.
func (s *Script) Warning(msg string) {
	s.emit(KeyWarning, msg)
}

// RerunIfChanged asks the orchestrator to rerun the build script when the
// file at path changes. path must be valid UTF-8.
func (s *Script) RerunIfChanged(path string) error {
	if !utf8.ValidString(path) {
		return &Error{Op: "rerun if changed", Var: path, Err: ErrInvalidText}
	}
	s.emit(KeyRerunIfChanged, path)
	return nil
}

// RerunIfEnvChanged asks the orchestrator to rerun the build script when
// the value of the named variable changes.
func (s *Script) RerunIfEnvChanged(name string) {
	s.emit(KeyRerunIfEnvChanged, name)
}

// AddLinkLib asks for the named library to be linked into the final artifact.
func (s *Script) AddLinkLib(name string) {
	s.emit(KeyLinkLib, name)
}

// AddLinkLibs calls AddLinkLib for each name, in order.
func (s *Script) AddLinkLibs(names ...string) {
	for _, name := range names {
		s.AddLinkLib(name)
	}
}

// AddLinkSearch adds dir to the native library search path.
func (s *Script) AddLinkSearch(dir string) error {
	if !utf8.ValidString(dir) {
		return &Error{Op: "link search", Var: dir, Err: ErrInvalidText}
	}
	s.emit(KeyLinkSearch, "native="+dir)
	return nil
}
