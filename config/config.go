// Package config loads jtype settings from jtype.yaml and the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/jtype/maven"
	"github.com/dhamidi/jtype/resolver"
	"github.com/dhamidi/jtype/typeexpr"
)

const (
	DefaultFile = "jtype.yaml"

	EnvConfig    = "JTYPE_CONFIG"
	EnvClasspath = "JTYPE_CLASSPATH"
	EnvBuiltin   = "JTYPE_BUILTIN"
)

type Config struct {
	// Classpath lists directories and jars; glob entries are expanded.
	Classpath []string `yaml:"classpath"`
	// Types lists extra YAML type tables, relative to the config file.
	Types []string `yaml:"types"`
	// Classes names extra known classes directly.
	Classes []string `yaml:"classes"`
	// Builtin includes the table of common JDK types. Defaults to true.
	Builtin *bool `yaml:"builtin"`

	Maven MavenConfig `yaml:"maven"`
	Log   LogConfig   `yaml:"log"`
	Check CheckConfig `yaml:"check"`

	// dir is the directory relative paths are resolved against.
	dir string
}

type MavenConfig struct {
	// Artifacts are coordinates such as com.google.guava:guava:33.0.0-jre.
	// Their jars are appended to the classpath.
	Artifacts []string `yaml:"artifacts"`
	// Repository overrides $MAVEN_REPO_URL.
	Repository string `yaml:"repository"`
	// Cache is where jars are downloaded to; defaults to the user cache
	// directory.
	Cache string `yaml:"cache"`
}

type LogConfig struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

type CheckConfig struct {
	Workers int `yaml:"workers"`
}

func Default() *Config {
	return &Config{
		Check: CheckConfig{Workers: 4},
		dir:   ".",
	}
}

// Load reads the config file at path, falling back to $JTYPE_CONFIG and
// then to jtype.yaml in the current directory, and applies environment
// overrides. A missing default file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg = Default()
		} else {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Check.Workers < 1 {
		return nil, fmt.Errorf("check.workers must be at least 1, got %d", cfg.Check.Workers)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if cp := os.Getenv(EnvClasspath); cp != "" {
		entries, err := resolver.SplitClasspath(cp)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvClasspath, err)
		}
		// relative to the working directory, not the config file
		for _, entry := range entries {
			if abs, err := filepath.Abs(entry); err == nil {
				entry = abs
			}
			c.Classpath = append(c.Classpath, entry)
		}
	}
	if v := os.Getenv(EnvBuiltin); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBuiltin, err)
		}
		c.Builtin = &b
	}
	return nil
}

func (c *Config) UseBuiltin() bool {
	return c.Builtin == nil || *c.Builtin
}

func (c *Config) path(p string) string {
	if filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Resolver builds the resolver described by c: explicit classes and type
// tables first, then the builtin JDK table, then the classpath and Maven
// artifacts, all behind a cache. Missing artifacts are downloaded.
func (c *Config) Resolver(ctx context.Context) (typeexpr.Resolver, error) {
	table := resolver.NewTable(c.Classes...)
	for _, p := range c.Types {
		t, err := resolver.LoadTable(c.path(p))
		if err != nil {
			return nil, err
		}
		table.Merge(t)
	}

	chain := resolver.Chain{table}
	if c.UseBuiltin() {
		chain = append(chain, resolver.Builtin())
	}

	var entries []string
	for _, entry := range c.Classpath {
		expanded, err := resolver.SplitClasspath(c.path(entry))
		if err != nil {
			return nil, err
		}
		entries = append(entries, expanded...)
	}
	jars, err := c.fetchArtifacts(ctx)
	if err != nil {
		return nil, err
	}
	entries = append(entries, jars...)
	if len(entries) > 0 {
		chain = append(chain, resolver.NewClasspath(entries...))
	}

	return resolver.NewCache(chain), nil
}

func (c *Config) fetchArtifacts(ctx context.Context) ([]string, error) {
	if len(c.Maven.Artifacts) == 0 {
		return nil, nil
	}
	artifacts := make([]maven.Artifact, len(c.Maven.Artifacts))
	for i, coord := range c.Maven.Artifacts {
		a, err := maven.ParseArtifact(coord)
		if err != nil {
			return nil, err
		}
		artifacts[i] = a
	}

	cache := c.Maven.Cache
	if cache == "" {
		dir, err := maven.DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		cache = dir
	} else {
		cache = c.path(cache)
	}

	repo := maven.NewRepository(cache)
	if c.Maven.Repository != "" {
		repo.URL = strings.TrimSuffix(c.Maven.Repository, "/")
	}
	return repo.FetchAll(ctx, artifacts)
}
