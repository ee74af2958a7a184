// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// Target names the API shape a prompt is rendered for.
const (
	TargetText = "text"
	TargetChat = "chat"
)

// Output format names for the render command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the top-level promptshape configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Output OutputConfig `mapstructure:"output"`
}

// RenderConfig controls the default conversion target.
type RenderConfig struct {
	Target string `mapstructure:"target"`
}

// OutputConfig controls how converted prompts are emitted.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults installs the default configuration values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("render.target", TargetChat)
	v.SetDefault("output.format", FormatJSON)
}

// SetupEnv binds environment variables with the PROMPTSHAPE prefix,
// e.g. PROMPTSHAPE_RENDER_TARGET overrides render.target.
func SetupEnv(v *viper.Viper) {
	v.SetEnvPrefix("PROMPTSHAPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the given path (or defaults) with
// environment variable overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	SetDefaults(v)
	SetupEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, promptserr.Errorf(promptserr.CodeConfigLoadReadFailure, "reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, promptserr.Errorf(promptserr.CodeConfigParseInvalidFormat, "unmarshalling config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, promptserr.Errorf(promptserr.CodeConfigValidateInvalidValue, "validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// FromViper unmarshals and validates a Config from an already-populated
// Viper (used by the CLI, where flag binding happens first).
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, promptserr.Errorf(promptserr.CodeConfigParseInvalidFormat, "unmarshalling config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, promptserr.Errorf(promptserr.CodeConfigValidateInvalidValue, "validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// Validate checks the configuration for logical errors. It returns a
// slice of all validation errors found, collecting all issues rather
// than stopping at the first one.
func (c *Config) Validate() []error {
	var errs []error

	validTargets := map[string]bool{TargetText: true, TargetChat: true}
	if !validTargets[c.Render.Target] {
		errs = append(errs, promptserr.Errorf(promptserr.CodeConfigValidateInvalidValue,
			"config: render.target must be one of [text, chat], got %q",
			c.Render.Target,
		))
	}

	validFormats := map[string]bool{FormatText: true, FormatJSON: true, FormatYAML: true}
	if !validFormats[c.Output.Format] {
		errs = append(errs, promptserr.Errorf(promptserr.CodeConfigValidateInvalidValue,
			"config: output.format must be one of [text, json, yaml], got %q",
			c.Output.Format,
		))
	}

	return errs
}
