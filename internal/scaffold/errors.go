package scaffold

import (
	"errors"
	"fmt"
)

// ErrMissingTarget is returned by Engine.Run when no target directory could
// be resolved.
var ErrMissingTarget = errors.New("target directory is not set")

// InvalidNameError is returned when a component name is rejected.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "invalid element name: " + e.Reason
	}
	return fmt.Sprintf("invalid element name %q: %s", e.Name, e.Reason)
}

// InvalidVersionError is returned when the requested version is not a
// semantic version.
type InvalidVersionError struct {
	Version string
	Err     error
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Version, e.Err)
}

func (e *InvalidVersionError) Unwrap() error {
	return e.Err
}

// MissingTemplateError is returned when a template file or directory the
// run depends on does not exist.
type MissingTemplateError struct {
	Path string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("template %q not found", e.Path)
}

// CopyError is returned when copying a template fails part way.
// The destination is left as it was when the failure happened.
type CopyError struct {
	Status Status
	Path   string
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s: %s: %v", e.Path, e.Status, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// ManifestError is returned when a JSON manifest cannot be parsed or written.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}
