// Package config loads polymd's user defaults.
//
// Values come from, in increasing precedence, an optional YAML file
// (~/.polymd.yaml by default) and environment variables:
//
//	POLYMD_AUTHOR           author used when --author is not given
//	POLYMD_REPOSITORY       repository owner used when --repository is not given
//	POLYMD_PACKAGE_MANAGER  npm, yarn or pnpm
//	USER / USERNAME         system user, the last author fallback
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Acidburn0zzz/polymd/internal/deps"
	"github.com/Acidburn0zzz/polymd/internal/scaffold"
)

// EnvPrefix prefixes every polymd environment variable.
const EnvPrefix = "POLYMD"

// Config holds the user defaults.
type Config struct {
	Author         string `mapstructure:"author" yaml:"author"`
	User           string `mapstructure:"user" yaml:"user"`
	Repository     string `mapstructure:"repository" yaml:"repository"`
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

// Load reads the configuration. An empty path searches the home directory
// for .polymd.yaml; a missing file there is not an error. An explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".polymd")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("package_manager", deps.DefaultManager)

	for _, key := range []string{"author", "repository", "package_manager"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	if err := v.BindEnv("user", "USER", "USERNAME"); err != nil {
		return nil, fmt.Errorf("binding user: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if !deps.Default().Has(cfg.PackageManager) {
		return nil, fmt.Errorf("unknown package manager %q in config (available: %v)",
			cfg.PackageManager, deps.Default().List())
	}

	return cfg, nil
}

// Environment converts the configuration into scaffold defaults rooted at
// workDir.
func (c *Config) Environment(workDir string) scaffold.Environment {
	return scaffold.Environment{
		Author:           c.Author,
		User:             c.User,
		RepositoryPrefix: c.Repository,
		WorkDir:          workDir,
	}
}
