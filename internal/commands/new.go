package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Acidburn0zzz/polymd/internal/deps"
	"github.com/Acidburn0zzz/polymd/internal/exec"
	"github.com/Acidburn0zzz/polymd/internal/input"
	"github.com/Acidburn0zzz/polymd/internal/output"
	"github.com/Acidburn0zzz/polymd/internal/scaffold"
)

// newFlags holds the values of the new command's flags
type newFlags struct {
	description    string
	author         string
	version        string
	repository     string
	path           string
	branded        bool
	tests          bool
	demo           bool
	install        bool
	ci             bool
	packageManager string
	templates      string
}

// NewCmd creates and returns the 'new' command for scaffolding components
func NewCmd() *cobra.Command {
	var flags newFlags

	cmd := &cobra.Command{
		Use:   "new [element-name]",
		Short: "Create a new web component project",
		Long: `Creates a web component project in ./<element-name> (or --path) with:
• <element-name>.html and an index page
• package.json, bower.json and polymer.json
• Documentation and release tasks
• Optional test suite (--tests), demo page (--demo) and Travis CI (--ci)

The name must contain a hyphen, as custom element names do.

Example:
  polymd new paper-rating --tests --demo --deps`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runNew(cmd, args, flags); err != nil {
				output.Error(err.Error())
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.description, "description", "d", "", "Component description")
	f.StringVarP(&flags.author, "author", "a", "", "Component author")
	f.StringVar(&flags.version, "version", "", "Initial version (default "+scaffold.DefaultVersion+")")
	f.StringVarP(&flags.repository, "repository", "r", "", "Repository owner, the element name is appended")
	f.StringVarP(&flags.path, "path", "p", "", "Directory to create the project in (default ./<element-name>)")
	f.BoolVar(&flags.branded, "arc", false, "Generate an Advanced REST Client component")
	f.BoolVar(&flags.tests, "tests", false, "Include the test suite")
	f.BoolVar(&flags.demo, "demo", false, "Include the demo page")
	f.BoolVar(&flags.install, "deps", false, "Install dependencies after scaffolding")
	f.BoolVar(&flags.ci, "ci", false, "Include the Travis CI configuration")
	f.StringVar(&flags.packageManager, "package-manager", "", "Package manager used with --deps ("+strings.Join(deps.Default().List(), ", ")+")")
	f.StringVar(&flags.templates, "templates", "", "Directory with custom templates")

	return cmd
}

func runNew(cmd *cobra.Command, args []string, flags newFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		if !interactive() {
			return errors.New("element name is required: polymd new <element-name>")
		}
		name = input.Prompt("Element name", "")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	req := scaffold.Request{
		Name:         name,
		Description:  flags.description,
		Author:       flags.author,
		Version:      flags.version,
		Repository:   flags.repository,
		TargetPath:   flags.path,
		Branded:      flags.branded,
		IncludeTests: flags.tests,
		IncludeDemo:  flags.demo,
		InstallDeps:  flags.install,
		IncludeCI:    flags.ci,
	}

	pmName := flags.packageManager
	if pmName == "" {
		pmName = cfg.PackageManager
	}
	pm, err := deps.Default().Lookup(pmName)
	if err != nil {
		return err
	}

	engineCfg := scaffold.EngineConfig{Logger: output.Logger}

	if flags.templates != "" {
		templates, err := templateFs(flags.templates)
		if err != nil {
			return err
		}
		engineCfg.Templates = templates
	}

	var stream *exec.StreamingWriter
	installOpts := deps.Options{Spinner: interactive() && !output.IsVerbose()}
	if output.IsVerbose() {
		stream = exec.NewStreamingWriter(os.Stdout, "["+pm.Name()+"] ", lipgloss.Color("240"))
		installOpts.Stream = stream
	}
	engineCfg.Installer = deps.NewInstaller(pm, installOpts)

	engine, err := scaffold.NewEngine(req, cfg.Environment(workDir), engineCfg)
	if err != nil {
		return err
	}
	opts := engine.Options()

	if _, err := os.Stat(opts.Target); err == nil && interactive() {
		if !input.Confirm(fmt.Sprintf("%s already exists. Write into it?", opts.Target), false) {
			return errors.New("aborted")
		}
	}

	output.Verbose(fmt.Sprintf("Creating %s in %s", opts.Name, opts.Target))

	report, err := engine.Run(cmd.Context())
	if stream != nil {
		_ = stream.Flush()
	}
	if err != nil {
		return err
	}

	output.Success(fmt.Sprintf("Created %s (%d files) in %s", opts.Name, report.Files, report.Target))
	for _, warning := range report.Warnings {
		output.Warn(warning)
	}

	if report.InstallErr != nil {
		output.Warn("Installing dependencies failed: " + report.InstallErr.Error())
		output.Info("Install them manually with:")
		output.Step(report.InstallHint())
	}

	output.Info("Next steps:")
	output.Step("cd " + report.Target)
	if opts.SkipInstall || report.InstallErr != nil {
		binary, installArgs := pm.Command()
		output.Step(strings.Join(append([]string{binary}, installArgs...), " "))
	}
	output.Step("polymer serve")

	return nil
}

// templateFs opens a user template directory read-only.
func templateFs(dir string) (afero.Fs, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving templates: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates %s is not a directory", abs)
	}

	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), abs)), nil
}
