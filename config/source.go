package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
)

// ErrResourceNotFound reports that the probed configuration resource does not
// exist. Absence is an expected outcome of probing, not a failure.
var ErrResourceNotFound = errors.New("configuration resource not found")

// ConfigIOError reports that a configuration resource exists but could not be
// read. It is fatal to mode resolution.
type ConfigIOError struct {
	Path string
	Err  error
}

func (e *ConfigIOError) Error() string {
	return fmt.Sprintf("cannot read configuration resource %s: %v", e.Path, e.Err)
}

func (e *ConfigIOError) Unwrap() error {
	return e.Err
}

// ConfigSource locates a configuration resource by relative path and parses
// it as a property map. Implementations return ErrResourceNotFound when the
// resource does not exist and *ConfigIOError when it exists but cannot be
// read.
type ConfigSource interface {
	Lookup(path string) (*properties.Properties, error)
}

// FileSource probes the filesystem, resolving relative paths against Root.
// An empty Root means the process working directory.
type FileSource struct {
	Root string
}

func (s FileSource) Lookup(path string) (*properties.Properties, error) {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrResourceNotFound
		}
		return nil, &ConfigIOError{Path: full, Err: err}
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, &ConfigIOError{Path: full, Err: err}
	}
	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, &ConfigIOError{Path: full, Err: err}
	}
	return props, nil
}
