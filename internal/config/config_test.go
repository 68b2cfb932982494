package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory and clears polymd variables
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{"POLYMD_AUTHOR", "POLYMD_REPOSITORY", "POLYMD_PACKAGE_MANAGER", "USER", "USERNAME"} {
		t.Setenv(key, "")
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Author)
	assert.Empty(t, cfg.User)
	assert.Empty(t, cfg.Repository)
	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Empty(t, cfg.File)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("POLYMD_AUTHOR", "Env Author")
	t.Setenv("POLYMD_REPOSITORY", "env-org")
	t.Setenv("POLYMD_PACKAGE_MANAGER", "pnpm")
	t.Setenv("USER", "jdoe")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Env Author", cfg.Author)
	assert.Equal(t, "env-org", cfg.Repository)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.Equal(t, "jdoe", cfg.User)
}

func TestLoad_HomeFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".polymd.yaml"), []byte(`
author: File Author
repository: file-org
package_manager: yarn
`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "File Author", cfg.Author)
	assert.Equal(t, "file-org", cfg.Repository)
	assert.Equal(t, "yarn", cfg.PackageManager)
	assert.Equal(t, filepath.Join(home, ".polymd.yaml"), cfg.File)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".polymd.yaml"), []byte("author: File Author\n"), 0644))
	t.Setenv("POLYMD_AUTHOR", "Env Author")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Env Author", cfg.Author)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repository: custom-org\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-org", cfg.Repository)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_UnknownPackageManager(t *testing.T) {
	isolate(t)
	t.Setenv("POLYMD_PACKAGE_MANAGER", "bower")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bower")
}

func TestConfig_Environment(t *testing.T) {
	cfg := &Config{Author: "A", User: "u", Repository: "org"}

	env := cfg.Environment("/work")
	assert.Equal(t, "A", env.Author)
	assert.Equal(t, "u", env.User)
	assert.Equal(t, "org", env.RepositoryPrefix)
	assert.Equal(t, "/work", env.WorkDir)
}
