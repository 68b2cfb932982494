package scaffold

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// Status is the outcome of a copy.
type Status int

const (
	// StatusCopied means everything not excluded was copied. Nested
	// conflicts may still be listed in Result.Skipped.
	StatusCopied Status = iota
	// StatusSourceMissing means the source does not exist. Nothing was done.
	StatusSourceMissing
	// StatusConflict means the destination is occupied by an entry of the
	// other kind (a directory where a file goes, or the reverse).
	StatusConflict
	// StatusPermissionDenied means reading or writing was not permitted.
	StatusPermissionDenied
	// StatusFailed covers any other I/O error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusSourceMissing:
		return "source missing"
	case StatusConflict:
		return "destination conflict"
	case StatusPermissionDenied:
		return "permission denied"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes what a copy did.
type Result struct {
	Status Status
	// Files is the number of regular files written.
	Files int
	// Skipped lists destinations left untouched because of a conflict.
	Skipped []string
	// Path is the path that caused a non-copied status.
	Path string
	// Err is set for StatusPermissionDenied and StatusFailed.
	Err error
}

// OK reports whether the copy completed.
func (r Result) OK() bool {
	return r.Status == StatusCopied
}

// Copier copies trees from a template filesystem to a destination
// filesystem. Source paths use forward slashes; destination paths are OS
// paths.
type Copier struct {
	src afero.Fs
	dst afero.Fs
}

// NewCopier creates a copier reading from src and writing to dst.
func NewCopier(src, dst afero.Fs) *Copier {
	return &Copier{src: src, dst: dst}
}

// Copy copies source to dest.
//
// A file replaces an existing file at dest, but is not written over an
// existing directory. A directory is merged into dest, which is created if
// needed. Entries of a directory source whose base name is in exclusions are
// skipped; exclusions only apply to the direct children of source, not to
// deeper levels.
//
// Copy never rolls back: on failure dest holds whatever was written so far.
func (c *Copier) Copy(source, dest string, exclusions ...string) Result {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, name := range exclusions {
		excluded[name] = struct{}{}
	}
	return c.copy(source, dest, excluded)
}

func (c *Copier) copy(source, dest string, excluded map[string]struct{}) Result {
	info, err := c.src.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Status: StatusSourceMissing, Path: source}
		}
		return failure(source, err)
	}

	if info.IsDir() {
		return c.copyDir(source, dest, excluded)
	}
	return c.copyFile(source, dest)
}

func (c *Copier) copyFile(source, dest string) Result {
	existing, err := c.dst.Stat(dest)
	switch {
	case err == nil && existing.IsDir():
		return Result{Status: StatusConflict, Path: dest, Skipped: []string{dest}}
	case err == nil:
		if err := c.dst.Remove(dest); err != nil {
			return failure(dest, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return failure(dest, err)
	}

	if err := c.dst.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return failure(dest, err)
	}

	in, err := c.src.Open(source)
	if err != nil {
		return failure(source, err)
	}
	defer in.Close()

	out, err := c.dst.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return failure(dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return failure(dest, err)
	}
	if err := out.Close(); err != nil {
		return failure(dest, err)
	}

	return Result{Status: StatusCopied, Files: 1}
}

func (c *Copier) copyDir(source, dest string, excluded map[string]struct{}) Result {
	existing, err := c.dst.Stat(dest)
	switch {
	case err == nil && !existing.IsDir():
		return Result{Status: StatusConflict, Path: dest, Skipped: []string{dest}}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return failure(dest, err)
	}

	// MkdirAll treats an existing directory as success.
	if err := c.dst.MkdirAll(dest, 0755); err != nil {
		return failure(dest, err)
	}

	dir, err := c.src.Open(source)
	if err != nil {
		return failure(source, err)
	}
	entries, err := dir.Readdir(-1)
	dir.Close()
	if err != nil {
		return failure(source, err)
	}

	result := Result{Status: StatusCopied}
	for _, entry := range entries {
		name := entry.Name()
		if _, skip := excluded[name]; skip {
			continue
		}

		child := c.copy(path.Join(source, name), filepath.Join(dest, name), nil)
		result.Files += child.Files
		result.Skipped = append(result.Skipped, child.Skipped...)

		switch child.Status {
		case StatusCopied, StatusConflict, StatusSourceMissing:
			// A conflict only skips that entry; a vanished entry has
			// nothing left to copy.
		default:
			result.Status = child.Status
			result.Path = child.Path
			result.Err = child.Err
			return result
		}
	}

	return result
}

func failure(p string, err error) Result {
	status := StatusFailed
	if errors.Is(err, fs.ErrPermission) {
		status = StatusPermissionDenied
	}
	return Result{Status: status, Path: p, Err: err}
}
