package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Defaults used when neither the request nor the environment provide a value.
const (
	DefaultDescription    = "A web component"
	DefaultVersion        = "0.0.1"
	AuthorPlaceholder     = "Your Name"
	RepositoryPlaceholder = "OWNER/REPOSITORY"

	// BrandedOwner owns the repository of every branded component.
	BrandedOwner = "advanced-rest-client"
)

// Request is what the user asked for.
type Request struct {
	Name        string
	Description string
	Author      string
	Version     string
	// Repository is the owner prefix, e.g. "my-org"; the name is appended.
	Repository string
	// TargetPath overrides the project directory.
	TargetPath string

	Branded      bool
	IncludeTests bool
	IncludeDemo  bool
	InstallDeps  bool
	IncludeCI    bool
}

// Environment carries the defaults taken from the user's environment.
type Environment struct {
	// Author overrides the system user as author.
	Author string
	// User is the login name of the current user.
	User string
	// RepositoryPrefix is the default repository owner.
	RepositoryPrefix string
	// WorkDir is the directory relative targets are resolved against.
	WorkDir string
}

// Options is a validated Request with every default filled in.
type Options struct {
	Name        string
	Description string
	Author      string
	Version     string
	Repository  string
	Target      string

	Branded     bool
	SkipTests   bool
	SkipDemo    bool
	SkipInstall bool
	SkipCI      bool
}

// Resolve validates req and fills in defaults from env.
// It performs no I/O.
func Resolve(req Request, env Environment) (Options, error) {
	name, err := ValidateName(req.Name)
	if err != nil {
		return Options{}, err
	}

	version := req.Version
	if version == "" {
		version = DefaultVersion
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return Options{}, &InvalidVersionError{Version: version, Err: err}
	}

	description := req.Description
	if description == "" {
		description = DefaultDescription
	}

	return Options{
		Name:        name,
		Description: description,
		Author:      resolveAuthor(req, env),
		Version:     version,
		Repository:  resolveRepository(name, req, env),
		Target:      resolveTarget(name, req, env),
		Branded:     req.Branded,
		SkipTests:   !req.IncludeTests,
		SkipDemo:    !req.IncludeDemo,
		SkipInstall: !req.InstallDeps,
		SkipCI:      !req.IncludeCI,
	}, nil
}

func resolveAuthor(req Request, env Environment) string {
	switch {
	case req.Author != "":
		return req.Author
	case env.Author != "":
		return env.Author
	case env.User != "":
		return env.User
	default:
		return AuthorPlaceholder
	}
}

func resolveRepository(name string, req Request, env Environment) string {
	switch {
	case req.Branded:
		return BrandedOwner + "/" + name
	case req.Repository != "":
		return joinRepository(req.Repository, name)
	case env.RepositoryPrefix != "":
		return joinRepository(env.RepositoryPrefix, name)
	default:
		return RepositoryPlaceholder
	}
}

func joinRepository(prefix, name string) string {
	return strings.TrimRight(prefix, "/") + "/" + name
}

func resolveTarget(name string, req Request, env Environment) string {
	if req.TargetPath != "" {
		if filepath.IsAbs(req.TargetPath) || env.WorkDir == "" {
			return filepath.Clean(req.TargetPath)
		}
		return filepath.Join(env.WorkDir, req.TargetPath)
	}
	if env.WorkDir == "" {
		return ""
	}
	return filepath.Join(env.WorkDir, name)
}

// Token is a placeholder and the value that replaces it.
type Token struct {
	Placeholder string
	Value       string
}

// TokenMap is an ordered list of replacements.
type TokenMap []Token

// Placeholders recognised in template files.
const (
	PlaceholderName        = "ELEMENT-NAME"
	PlaceholderAuthor      = "ELEMENT-AUTHOR"
	PlaceholderDescription = "ELEMENT-DESCRIPTION"
	PlaceholderVersion     = "ELEMENT-VERSION"
	PlaceholderRepository  = "REPOSITORY-NAME"
)

// Tokens returns the replacements for o in the order they are applied.
func (o Options) Tokens() TokenMap {
	return TokenMap{
		{PlaceholderName, o.Name},
		{PlaceholderAuthor, o.Author},
		{PlaceholderDescription, o.Description},
		{PlaceholderVersion, o.Version},
		{PlaceholderRepository, o.Repository},
	}
}
