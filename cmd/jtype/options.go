package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/jtype/config"
	"github.com/dhamidi/jtype/resolver"
	"github.com/dhamidi/jtype/typeexpr"
)

// options holds the flags shared by every subcommand. Flags override
// jtype.yaml and the JTYPE_* environment variables.
type options struct {
	configPath string
	classpath  string
	types      []string
	classes    []string
	artifacts  []string
	noBuiltin  bool
	verbose    int

	cfg      *config.Config
	resolver typeexpr.Resolver
}

func (o *options) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default jtype.yaml, or $JTYPE_CONFIG)")
	flags.StringVarP(&o.classpath, "classpath", "c", "", "directories and jars to resolve classes from")
	flags.StringSliceVarP(&o.types, "types", "t", nil, "YAML type tables to resolve classes from")
	flags.StringSliceVar(&o.classes, "class", nil, "extra class names to treat as known")
	flags.StringSliceVarP(&o.artifacts, "maven", "m", nil, "Maven artifacts (group:artifact:version) to download and resolve classes from")
	flags.BoolVar(&o.noBuiltin, "no-builtin", false, "do not include the builtin JDK type table")
	flags.CountVarP(&o.verbose, "verbose", "v", "increase log verbosity")
}

func (o *options) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.classpath != "" {
		entries, err := resolver.SplitClasspath(o.classpath)
		if err != nil {
			return err
		}
		cfg.Classpath = append(cfg.Classpath, absPaths(entries)...)
	}
	cfg.Types = append(cfg.Types, absPaths(o.types)...)
	cfg.Classes = append(cfg.Classes, o.classes...)
	cfg.Maven.Artifacts = append(cfg.Maven.Artifacts, o.artifacts...)
	if o.noBuiltin {
		b := false
		cfg.Builtin = &b
	}
	cfg.Log.Verbosity += o.verbose

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)

	o.cfg = cfg
	return nil
}

// Resolver builds the configured resolver once.
func (o *options) Resolver(ctx context.Context) (typeexpr.Resolver, error) {
	if o.resolver != nil {
		return o.resolver, nil
	}
	r, err := o.cfg.Resolver(ctx)
	if err != nil {
		return nil, err
	}
	o.resolver = r
	return r, nil
}

// absPaths makes command line paths independent of the config file's
// directory.
func absPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		out[i] = p
	}
	return out
}
