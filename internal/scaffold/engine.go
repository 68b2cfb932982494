package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/Acidburn0zzz/polymd/internal/deps"
	"github.com/Acidburn0zzz/polymd/internal/templates"
)

// Template entries, relative to the template root.
const (
	templateHelpers  = "helpers"
	templateLogic    = "logic"
	templatePackage  = "package.json"
	templateTasks    = "tasks"
	templateElement  = "element.html"
	templateTests    = "test"
	templateDemo     = "demo"
	templateLicense  = "license.md"
	ciConfigFileName = ".travis.yml"

	// ElementExt is the extension of the generated component file.
	ElementExt = ".html"
)

// Installer installs the dependencies of a generated project.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// EngineConfig holds the collaborators of an Engine. Zero values select the
// defaults: embedded templates, the OS filesystem, npm and a silent logger.
type EngineConfig struct {
	Templates afero.Fs
	Target    afero.Fs
	Installer Installer
	Logger    *log.Logger
}

// Engine scaffolds one project.
type Engine struct {
	opts      Options
	target    afero.Fs
	copier    *Copier
	installer Installer
	logger    *log.Logger
}

// Report summarises a completed run.
type Report struct {
	Target string
	// Files is the number of files copied from the templates.
	Files int
	// Warnings lists conditions that did not stop the run.
	Warnings []string
	// InstallErr is set when dependency installation failed.
	InstallErr error
}

// NewEngine validates req against env and prepares a run.
func NewEngine(req Request, env Environment, cfg EngineConfig) (*Engine, error) {
	opts, err := Resolve(req, env)
	if err != nil {
		return nil, err
	}

	if cfg.Templates == nil {
		cfg.Templates = afero.FromIOFS{FS: templates.FS}
	}
	if cfg.Target == nil {
		cfg.Target = afero.NewOsFs()
	}
	if cfg.Installer == nil {
		pm, _ := deps.Default().Get(deps.DefaultManager)
		cfg.Installer = deps.NewInstaller(pm, deps.Options{})
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Engine{
		opts:      opts,
		target:    cfg.Target,
		copier:    NewCopier(cfg.Templates, cfg.Target),
		installer: cfg.Installer,
		logger:    cfg.Logger,
	}, nil
}

// Options returns the resolved options of the run.
func (e *Engine) Options() Options {
	return e.opts
}

// copyStep copies one template entry into the target.
type copyStep struct {
	source     string
	dest       string
	exclusions []string
}

func (e *Engine) plan() []copyStep {
	o := e.opts

	var helperExclusions []string
	if o.SkipCI {
		helperExclusions = append(helperExclusions, ciConfigFileName)
	}

	steps := []copyStep{
		{source: templateHelpers, dest: "", exclusions: helperExclusions},
		{source: templateLogic, dest: ""},
		{source: templatePackage, dest: "package.json"},
		{source: templateTasks, dest: "tasks"},
		{source: templateElement, dest: o.Name + ElementExt},
	}
	if !o.SkipTests {
		steps = append(steps, copyStep{source: templateTests, dest: "test"})
	}
	if !o.SkipDemo {
		steps = append(steps, copyStep{source: templateDemo, dest: "demo"})
	}
	if o.Branded {
		steps = append(steps, copyStep{source: templateLicense, dest: "LICENSE.md"})
	}
	return steps
}

// RewriteTargets returns the generated files placeholders are replaced in,
// relative to the target directory.
func (o Options) RewriteTargets() []string {
	files := []string{
		"package.json",
		"bower.json",
		"README.md",
		"index.html",
		o.Name + ElementExt,
	}
	if !o.SkipTests {
		files = append(files, filepath.Join("test", "index.html"), filepath.Join("test", "basic-test.html"))
	}
	if !o.SkipDemo {
		files = append(files, filepath.Join("demo", "index.html"))
	}
	if o.Branded {
		files = append(files, "LICENSE.md")
	}
	return files
}

// Run copies the templates, rewrites placeholders and installs dependencies.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	if e.opts.Target == "" {
		return nil, ErrMissingTarget
	}

	report := &Report{Target: e.opts.Target}
	logger := e.logger.With("element", e.opts.Name)

	for _, step := range e.plan() {
		dest := filepath.Join(e.opts.Target, step.dest)
		result := e.copier.Copy(step.source, dest, step.exclusions...)
		report.Files += result.Files

		for _, skipped := range result.Skipped {
			msg := fmt.Sprintf("%s already exists and was not replaced", skipped)
			logger.Warn("destination conflict", "path", skipped)
			report.Warnings = append(report.Warnings, msg)
		}

		switch result.Status {
		case StatusCopied, StatusConflict:
			logger.Debug("copied template", "source", step.source, "dest", dest, "files", result.Files)
		case StatusSourceMissing:
			return report, &MissingTemplateError{Path: step.source}
		default:
			return report, &CopyError{Status: result.Status, Path: result.Path, Err: result.Err}
		}
	}

	tokens := e.opts.Tokens()
	for _, rel := range e.opts.RewriteTargets() {
		file := filepath.Join(e.opts.Target, rel)
		if err := Rewrite(e.target, file, tokens); err != nil {
			return report, err
		}
		logger.Debug("rewrote placeholders", "file", rel)
	}

	if e.opts.Branded {
		err := PatchManifests(e.target,
			filepath.Join(e.opts.Target, "package.json"),
			filepath.Join(e.opts.Target, "bower.json"))
		if err != nil {
			return report, err
		}
		logger.Debug("patched manifests for branded mode")
	}

	if !e.opts.SkipInstall {
		if err := e.installer.Install(ctx, e.opts.Target); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				report.InstallErr = err
				return report, fmt.Errorf("installing dependencies: %w", ctxErr)
			}

			report.InstallErr = err
			logger.Warn("dependency install failed", "dir", e.opts.Target, "err", err)
			logger.Info("install dependencies manually", "command", installHint(err, e.opts.Target))

			var installErr *deps.InstallError
			if errors.As(err, &installErr) && installErr.Stderr != "" {
				logger.Debug("installer output", "stderr", installErr.Stderr)
			}
		}
	}

	return report, nil
}

func installHint(err error, dir string) string {
	var installErr *deps.InstallError
	if errors.As(err, &installErr) {
		return installErr.Hint()
	}
	return fmt.Sprintf("cd %s && %s install", dir, deps.DefaultManager)
}

// InstallHint returns the command that retries a failed install.
func (r *Report) InstallHint() string {
	if r.InstallErr == nil {
		return ""
	}
	return installHint(r.InstallErr, r.Target)
}
