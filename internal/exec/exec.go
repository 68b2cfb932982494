package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor runs external commands
type Executor struct {
	stdout        io.Writer
	stderr        io.Writer
	spinnerOutput io.Writer
	env           []string
	dir           string

	// For mocking in tests
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures command execution
type Options struct {
	Stdout        io.Writer // Mirror of the command's stdout (default os.Stdout)
	Stderr        io.Writer // Mirror of the command's stderr (default os.Stderr)
	SpinnerOutput io.Writer // Where the spinner renders (default os.Stderr)
	Env           []string  // Additional environment variables
	Dir           string    // Working directory
}

// NewExecutor creates an executor with sensible defaults
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	spinnerOutput := opts.SpinnerOutput
	if spinnerOutput == nil {
		spinnerOutput = os.Stderr
	}

	return &Executor{
		stdout:        stdout,
		stderr:        stderr,
		spinnerOutput: spinnerOutput,
		env:           opts.Env,
		dir:           opts.Dir,
		commandFunc:   exec.Command,
	}
}

// Dir returns the working directory commands run in.
func (e *Executor) Dir() string {
	return e.dir
}

// clone returns a copy of e with the given output streams
func (e *Executor) clone(stdout, stderr io.Writer) *Executor {
	return &Executor{
		stdout:        stdout,
		stderr:        stderr,
		spinnerOutput: e.spinnerOutput,
		env:           e.env,
		dir:           e.dir,
		commandFunc:   e.commandFunc,
	}
}

// Run executes a command, streaming its output to the executor's writers
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.commandFunc(name, args...)

	if e.dir != "" {
		cmd.Dir = e.dir
	}

	if len(e.env) > 0 {
		base := cmd.Env
		if base == nil {
			base = os.Environ()
		}
		cmd.Env = append(base, e.env...)
	}

	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return enhanceError(err, name)
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		<-errCh
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		if err != nil {
			if isCommandNotFound(err) {
				return enhanceError(err, name)
			}
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}

// Output executes a command and returns everything it wrote to stdout and
// stderr. Output is still mirrored to the executor's writers.
func (e *Executor) Output(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	capturing := e.clone(NewTeeWriter(&stdout, e.stdout), NewTeeWriter(&stderr, e.stderr))
	err := capturing.Run(ctx, name, args...)

	return stdout.Bytes(), stderr.Bytes(), err
}

// OutputWithSpinner behaves like Output but shows a progress spinner while
// the command runs. The command's output is captured, not mirrored.
func (e *Executor) OutputWithSpinner(ctx context.Context, message string, name string, args ...string) ([]byte, []byte, error) {
	quiet := e.clone(io.Discard, io.Discard)

	type result struct {
		stdout, stderr []byte
		err            error
	}
	done := make(chan result, 1)
	go func() {
		stdout, stderr, err := quiet.Output(ctx, name, args...)
		done <- result{stdout, stderr, err}
	}()

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(e.spinnerOutput), tea.WithInput(nil))

	finished := make(chan struct{})
	go func() {
		// Spinner errors only affect presentation.
		_, _ = p.Run()
		close(finished)
	}()

	res := <-done
	// Send blocks until the program reads it, or forever if Run already failed.
	go p.Send(spinnerDoneMsg{err: res.err})
	<-finished

	return res.stdout, res.stderr, res.err
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("❌ %s\n", m.message)
		}
		return fmt.Sprintf("✅ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

// isCommandNotFound checks if an error indicates a command was not found
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 127 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "command not found")
}

// IsCommandNotFound reports whether err came from a missing executable.
func IsCommandNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) || isCommandNotFound(err)
}

// NotFoundError is returned when the command binary cannot be located.
type NotFoundError struct {
	Command string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v\n💡 Command '%s' not found. Please install it and try again", e.Err, e.Command)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// enhanceError adds a helpful message for missing commands
func enhanceError(err error, cmd string) error {
	return &NotFoundError{Command: cmd, Err: err}
}

// GenericCommand provides a fluent API for building and executing commands
type GenericCommand struct {
	executor    *Executor
	command     string
	args        []string
	env         []string
	dir         string
	showSpinner bool
	spinnerMsg  string
}

// NewGenericCommand creates a new generic command builder
func NewGenericCommand(executor *Executor, command string) *GenericCommand {
	return &GenericCommand{
		executor: executor,
		command:  command,
		args:     []string{},
	}
}

// WithArgs adds arguments to the command
func (g *GenericCommand) WithArgs(args ...string) *GenericCommand {
	g.args = append(g.args, args...)
	return g
}

// WithEnv adds environment variables
func (g *GenericCommand) WithEnv(env ...string) *GenericCommand {
	g.env = append(g.env, env...)
	return g
}

// WithDir sets the working directory
func (g *GenericCommand) WithDir(dir string) *GenericCommand {
	g.dir = dir
	return g
}

// WithSpinner enables the spinner with the given message
func (g *GenericCommand) WithSpinner(message string) *GenericCommand {
	g.showSpinner = true
	g.spinnerMsg = message
	return g
}

func (g *GenericCommand) build() *Executor {
	cmdExecutor := g.executor.clone(g.executor.stdout, g.executor.stderr)
	cmdExecutor.env = append(append([]string{}, g.executor.env...), g.env...)
	if g.dir != "" {
		cmdExecutor.dir = g.dir
	}
	return cmdExecutor
}

// Run executes the command
func (g *GenericCommand) Run(ctx context.Context) error {
	_, _, err := g.Output(ctx)
	return err
}

// Output executes the command and returns its captured stdout and stderr
func (g *GenericCommand) Output(ctx context.Context) ([]byte, []byte, error) {
	cmdExecutor := g.build()
	if g.showSpinner {
		return cmdExecutor.OutputWithSpinner(ctx, g.spinnerMsg, g.command, g.args...)
	}
	return cmdExecutor.Output(ctx, g.command, g.args...)
}

// String returns the command line for display
func (g *GenericCommand) String() string {
	parts := []string{g.command}
	parts = append(parts, g.args...)
	return strings.Join(parts, " ")
}
