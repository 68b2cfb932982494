// Package deps installs the dependencies of a generated project.
package deps

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Acidburn0zzz/polymd/internal/exec"
)

// InstallError describes a failed dependency install.
// Stdout and Stderr hold everything the command printed.
type InstallError struct {
	Err     error
	Dir     string
	Command string
	Stdout  string
	Stderr  string
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("%s in %s: %v", e.Command, e.Dir, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Hint returns the command the user can run to retry the install.
func (e *InstallError) Hint() string {
	return fmt.Sprintf("cd %s && %s", e.Dir, e.Command)
}

// Options configures an Installer
type Options struct {
	// Spinner shows a progress spinner instead of streaming output
	Spinner bool
	// Stream receives the command's output as it runs (verbose mode)
	Stream io.Writer
	// Env is appended to the command environment
	Env []string
}

// Installer runs a package manager in a project directory
type Installer struct {
	manager PackageManager
	opts    Options
}

// NewInstaller creates an installer for the given package manager
func NewInstaller(manager PackageManager, opts Options) *Installer {
	return &Installer{manager: manager, opts: opts}
}

// Manager returns the package manager the installer runs.
func (i *Installer) Manager() PackageManager {
	return i.manager
}

// Install runs the package manager with dir as working directory.
// Output is captured and discarded on success. On failure the returned
// error is an *InstallError carrying the captured output.
func (i *Installer) Install(ctx context.Context, dir string) error {
	binary, args := i.manager.Command()

	stream := i.opts.Stream
	if stream == nil {
		stream = io.Discard
	}

	executor := exec.NewExecutor(&exec.Options{
		Stdout:        stream,
		Stderr:        stream,
		SpinnerOutput: os.Stderr,
		Env:           i.opts.Env,
	})

	cmd := exec.NewGenericCommand(executor, binary).
		WithArgs(args...).
		WithDir(dir)
	if i.opts.Spinner {
		cmd = cmd.WithSpinner("Installing dependencies with " + i.manager.Name())
	}

	stdout, stderr, err := cmd.Output(ctx)
	if err != nil {
		return &InstallError{
			Err:     err,
			Dir:     dir,
			Command: strings.TrimSpace(cmd.String()),
			Stdout:  string(stdout),
			Stderr:  string(stderr),
		}
	}

	return nil
}
