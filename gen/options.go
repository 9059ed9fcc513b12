// SPDX-License-Identifier: MIT
// Package: typestate/gen
//
// options.go - functional options for Parse, Generate and Describe.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Defaults: tag key "typestate", discard logger, generator "typestate-gen".

package gen

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// Directive marks a struct as a builder entity.
	Directive = "//typestate:builder"
	// DefaultTagKey is the struct tag key read for field classification.
	DefaultTagKey = "typestate"
	// DefaultGenerator names the tool in the generated header.
	DefaultGenerator = "typestate-gen"
	// DefaultSuffix replaces ".go" in the output file name.
	DefaultSuffix = "_typestate.go"
	// SkipToken excludes a field from the builder.
	SkipToken = "-"
)

// Option customizes Parse, Generate and Describe.
type Option func(*config)

type config struct {
	tagKey    string
	logger    *slog.Logger
	generator string
}

func newConfig(opts []Option) *config {
	c := &config{
		tagKey:    DefaultTagKey,
		logger:    slog.New(slog.DiscardHandler),
		generator: DefaultGenerator,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CheckTagKey reports whether key can name a struct tag: non-empty, without
// whitespace, colons or quotes. Callers holding user input validate with it
// before WithTagKey.
func CheckTagKey(key string) error {
	if key == "" || strings.ContainsAny(key, " \t\n\r:\"") {
		return fmt.Errorf("%w: %q", ErrInvalidTagKey, key)
	}

	return nil
}

// WithTagKey sets the struct tag key holding field classifications.
// Panics on a key CheckTagKey rejects.
func WithTagKey(key string) Option {
	if CheckTagKey(key) != nil {
		panic("gen: WithTagKey(" + key + ")")
	}
	return func(c *config) {
		c.tagKey = key
	}
}

// WithLogger sets the logger used for per-entity debug records.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("gen: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithGeneratorName sets the tool name written into the generated header.
// Panics on an empty name.
func WithGeneratorName(name string) Option {
	if strings.TrimSpace(name) == "" {
		panic("gen: WithGeneratorName(\"\")")
	}
	return func(c *config) {
		c.generator = name
	}
}

// OutputPath returns the generated file path for src: "dir/x.go" becomes
// "dir/x" + suffix.
func OutputPath(src, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return strings.TrimSuffix(src, ".go") + suffix
}
