package scaffold

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	opts, err := Resolve(Request{Name: "My-El"}, Environment{WorkDir: "/work"})
	require.NoError(t, err)

	assert.Equal(t, "my-el", opts.Name)
	assert.Equal(t, DefaultDescription, opts.Description)
	assert.Equal(t, DefaultVersion, opts.Version)
	assert.Equal(t, AuthorPlaceholder, opts.Author)
	assert.Equal(t, RepositoryPlaceholder, opts.Repository)
	assert.Equal(t, filepath.Join("/work", "my-el"), opts.Target)
	assert.False(t, opts.Branded)
	assert.True(t, opts.SkipTests)
	assert.True(t, opts.SkipDemo)
	assert.True(t, opts.SkipInstall)
	assert.True(t, opts.SkipCI)
}

func TestResolve_IncludeFlags(t *testing.T) {
	opts, err := Resolve(Request{
		Name:         "my-el",
		IncludeTests: true,
		IncludeDemo:  true,
		InstallDeps:  true,
		IncludeCI:    true,
	}, Environment{})
	require.NoError(t, err)

	assert.False(t, opts.SkipTests)
	assert.False(t, opts.SkipDemo)
	assert.False(t, opts.SkipInstall)
	assert.False(t, opts.SkipCI)
}

func TestResolve_AuthorChain(t *testing.T) {
	full := Environment{Author: "Env Author", User: "jdoe"}

	tests := []struct {
		name     string
		req      Request
		env      Environment
		expected string
	}{
		{"explicit wins", Request{Name: "my-el", Author: "Explicit"}, full, "Explicit"},
		{"environment override", Request{Name: "my-el"}, full, "Env Author"},
		{"system user", Request{Name: "my-el"}, Environment{User: "jdoe"}, "jdoe"},
		{"placeholder", Request{Name: "my-el"}, Environment{}, AuthorPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Resolve(tt.req, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.Author)
		})
	}
}

func TestResolve_RepositoryChain(t *testing.T) {
	env := Environment{RepositoryPrefix: "env-org"}

	tests := []struct {
		name     string
		req      Request
		env      Environment
		expected string
	}{
		{"branded ignores everything else", Request{Name: "my-el", Branded: true, Repository: "mine"}, env, "advanced-rest-client/my-el"},
		{"explicit prefix", Request{Name: "my-el", Repository: "my-org"}, env, "my-org/my-el"},
		{"explicit prefix trailing slash", Request{Name: "my-el", Repository: "my-org/"}, env, "my-org/my-el"},
		{"environment prefix", Request{Name: "my-el"}, env, "env-org/my-el"},
		{"placeholder", Request{Name: "my-el"}, Environment{}, RepositoryPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Resolve(tt.req, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.Repository)
		})
	}
}

func TestResolve_Target(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		env      Environment
		expected string
	}{
		{"default under workdir", Request{Name: "my-el"}, Environment{WorkDir: "/work"}, filepath.Join("/work", "my-el")},
		{"relative path", Request{Name: "my-el", TargetPath: "out/el"}, Environment{WorkDir: "/work"}, filepath.Join("/work", "out", "el")},
		{"absolute path", Request{Name: "my-el", TargetPath: "/srv/el"}, Environment{WorkDir: "/work"}, filepath.Clean("/srv/el")},
		{"no workdir", Request{Name: "my-el"}, Environment{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Resolve(tt.req, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.Target)
		})
	}
}

func TestResolve_Version(t *testing.T) {
	opts, err := Resolve(Request{Name: "my-el", Version: "2.1.0-beta.1"}, Environment{})
	require.NoError(t, err)
	assert.Equal(t, "2.1.0-beta.1", opts.Version)

	for _, bad := range []string{"1.0", "v1.0.0", "latest"} {
		_, err := Resolve(Request{Name: "my-el", Version: bad}, Environment{})
		var versionErr *InvalidVersionError
		require.True(t, errors.As(err, &versionErr), bad)
		assert.Equal(t, bad, versionErr.Version)
	}
}

func TestResolve_InvalidName(t *testing.T) {
	_, err := Resolve(Request{Name: "element"}, Environment{WorkDir: "/work"})

	var nameErr *InvalidNameError
	assert.True(t, errors.As(err, &nameErr))
}

func TestOptions_Tokens(t *testing.T) {
	opts := Options{
		Name:        "my-el",
		Author:      "Jane",
		Description: "Desc",
		Version:     "1.0.0",
		Repository:  "org/my-el",
	}

	tokens := opts.Tokens()
	require.Len(t, tokens, 5)

	var placeholders []string
	for _, tok := range tokens {
		placeholders = append(placeholders, tok.Placeholder)
	}
	assert.Equal(t, []string{
		"ELEMENT-NAME", "ELEMENT-AUTHOR", "ELEMENT-DESCRIPTION", "ELEMENT-VERSION", "REPOSITORY-NAME",
	}, placeholders)
	assert.Equal(t, "org/my-el", tokens[4].Value)
}
