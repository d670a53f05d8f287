package buildenv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Directives is a declarative set of directives, applied in field order.
//
// A directives file looks like:
//
//	warnings:
//	  - vendored zlib is deprecated
//	rerun-if-changed:
//	  - build.rs
//	  - third_party/zlib
//	rerun-if-env-changed:
//	  - ZLIB_DIR
//	link-search:
//	  - /opt/zlib/lib
//	link-libs:
//	  - z
type Directives struct {
	Warnings          []string `yaml:"warnings"`
	RerunIfChanged    []string `yaml:"rerun-if-changed"`
	RerunIfEnvChanged []string `yaml:"rerun-if-env-changed"`
	LinkSearch        []string `yaml:"link-search"`
	LinkLibs          []string `yaml:"link-libs"`
}

// ParseDirectives decodes a YAML directives document. An empty document
// yields no directives; unknown keys are an error.
func ParseDirectives(data []byte) (*Directives, error) {
	var d Directives
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing directives: %w", err)
	}
	return &d, nil
}

// LoadDirectives reads and decodes the directives file at path.
func LoadDirectives(path string) (*Directives, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading directives: %w", err)
	}
	return ParseDirectives(data)
}

// Merge appends the directives of o to d.
func (d *Directives) Merge(o *Directives) {
	d.Warnings = append(d.Warnings, o.Warnings...)
	d.RerunIfChanged = append(d.RerunIfChanged, o.RerunIfChanged...)
	d.RerunIfEnvChanged = append(d.RerunIfEnvChanged, o.RerunIfEnvChanged...)
	d.LinkSearch = append(d.LinkSearch, o.LinkSearch...)
	d.LinkLibs = append(d.LinkLibs, o.LinkLibs...)
}

// Apply emits every directive of d on s. It stops at the first invalid
// path; directives already written stay written.
func (d *Directives) Apply(s *Script) error {
	for _, msg := range d.Warnings {
		s.Warning(msg)
	}
	for _, path := range d.RerunIfChanged {
		if err := s.RerunIfChanged(path); err != nil {
			return err
		}
	}
	for _, name := range d.RerunIfEnvChanged {
		s.RerunIfEnvChanged(name)
	}
	for _, dir := range d.LinkSearch {
		if err := s.AddLinkSearch(dir); err != nil {
			return err
		}
	}
	s.AddLinkLibs(d.LinkLibs...)
	return s.Err()
}
