// Package config defines the configuration surface for goturtle.
// The types map onto parser options and diagnostic engine options and
// carry no loader dependencies beyond YAML.
package config

import (
	"fmt"
	"io"

	"github.com/yaklabco/goturtle/pkg/diag"
	"github.com/yaklabco/goturtle/pkg/turtle"
)

// DiagConfig configures the diagnostic engine.
type DiagConfig struct {
	// Format selects the output format: human, json, compact, gcc, msvc.
	Format string `yaml:"format"`

	// Color controls color output: auto, always, never.
	Color string `yaml:"color"`

	// ShowColumn includes column numbers in locations. Defaults to true.
	ShowColumn *bool `yaml:"show_column"`

	// ShowSource includes source snippets with caret underlines. Defaults to true.
	ShowSource *bool `yaml:"show_source"`

	// ShowSuggestions includes help and note annotations. Defaults to true.
	ShowSuggestions *bool `yaml:"show_suggestions"`

	// Werror treats all warnings as errors.
	Werror bool `yaml:"werror"`

	// Suppress lists warning types to drop, by kebab-case name.
	Suppress []string `yaml:"suppress"`

	// Promote lists warning types to raise to errors, by kebab-case name.
	Promote []string `yaml:"promote"`
}

// Config is the root configuration structure for goturtle.
type Config struct {
	Parser      turtle.Options `yaml:"parser"`
	Diagnostics DiagConfig     `yaml:"diagnostics"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Parser: turtle.DefaultOptions(),
		Diagnostics: DiagConfig{
			Format: diag.FormatHuman.String(),
			Color:  "auto",
		},
	}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Diagnostics.Format != "" {
		if _, err := diag.ParseFormat(c.Diagnostics.Format); err != nil {
			return err
		}
	}
	switch c.Diagnostics.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q; valid modes: auto, always, never", c.Diagnostics.Color)
	}
	for _, name := range c.Diagnostics.Suppress {
		if _, ok := turtle.ParseErrorType(name); !ok {
			return fmt.Errorf("unknown error type %q in suppress list", name)
		}
	}
	for _, name := range c.Diagnostics.Promote {
		if _, ok := turtle.ParseErrorType(name); !ok {
			return fmt.Errorf("unknown error type %q in promote list", name)
		}
	}
	if c.Parser.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative, got %d", c.Parser.MaxErrors)
	}
	return nil
}

// EngineOptions builds diagnostic engine options writing to w.
func (c *Config) EngineOptions(w io.Writer) diag.Options {
	opts := diag.DefaultOptions()
	opts.Writer = w
	if c.Diagnostics.Format != "" {
		opts.Format = diag.Format(c.Diagnostics.Format)
	}
	if c.Diagnostics.Color != "" {
		opts.Color = c.Diagnostics.Color
	}
	if c.Diagnostics.ShowColumn != nil {
		opts.ShowColumn = *c.Diagnostics.ShowColumn
	}
	if c.Diagnostics.ShowSource != nil {
		opts.ShowSource = *c.Diagnostics.ShowSource
	}
	if c.Diagnostics.ShowSuggestions != nil {
		opts.ShowSuggestions = *c.Diagnostics.ShowSuggestions
	}
	opts.Werror = c.Diagnostics.Werror
	return opts
}

// NewEngine builds a diagnostic engine with the suppress and promote
// lists applied. Validate must have passed first.
func (c *Config) NewEngine(w io.Writer) *diag.Engine {
	engine := diag.New(c.EngineOptions(w))
	for _, name := range c.Diagnostics.Suppress {
		if t, ok := turtle.ParseErrorType(name); ok {
			engine.SuppressWarning(t)
		}
	}
	for _, name := range c.Diagnostics.Promote {
		if t, ok := turtle.ParseErrorType(name); ok {
			engine.PromoteWarning(t)
		}
	}
	return engine
}
