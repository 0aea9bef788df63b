// File: lixenwraith/apacheconf/builder.go
package apacheconf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ValidatorFunc inspects a freshly parsed tree and returns an error to reject it.
type ValidatorFunc func(t *Tree) error

// Builder provides a fluent interface for configuring a Parser
type Builder struct {
	opts         Options
	settingsFile string
	logger       *zap.Logger
	err          error
	validators   []ValidatorFunc
}

// NewBuilder creates a builder starting from DefaultOptions
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithOptions replaces all options at once
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithIndent sets the rendering unit per nesting level
func (b *Builder) WithIndent(indent string) *Builder {
	if strings.TrimLeft(indent, " \t") != "" {
		b.err = fmt.Errorf("indent must contain only spaces and tabs, got %q", indent)
		return b
	}
	b.opts.Indent = indent
	return b
}

// WithSource sets the name reported in parse errors
func (b *Builder) WithSource(source string) *Builder {
	b.opts.Source = source
	return b
}

// WithStrictClose enables or disables closing-tag name checks
func (b *Builder) WithStrictClose(strict bool) *Builder {
	b.opts.StrictClose = strict
	return b
}

// WithRequireClosed makes sections left open at end of input an error
func (b *Builder) WithRequireClosed(require bool) *Builder {
	b.opts.RequireClosed = require
	return b
}

// WithMaxFileSize limits ParseFile input size in bytes
func (b *Builder) WithMaxFileSize(size int64) *Builder {
	if size < 0 {
		b.err = fmt.Errorf("max file size cannot be negative: %d", size)
		return b
	}
	b.opts.MaxFileSize = size
	return b
}

// WithLogger sets the logger handed to the parser
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithSettingsFile loads options from a TOML file during Build.
// Explicit With* calls made before Build are overridden by keys present in the file.
func (b *Builder) WithSettingsFile(path string) *Builder {
	b.settingsFile = path
	return b
}

// WithValidator adds a validation function that runs after every successful parse
// Multiple validators run in the order they were added; all failures are reported
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Parser. A missing settings file is not fatal: the parser is
// returned together with ErrSettingsNotFound.
func (b *Builder) Build() (*ValidatingParser, error) {
	if b.err != nil {
		return nil, b.err
	}

	opts := b.opts
	var settingsErr error
	if b.settingsFile != "" {
		loaded, err := loadOptionsOver(b.settingsFile, opts)
		switch {
		case errors.Is(err, ErrSettingsNotFound):
			settingsErr = err
		case err != nil:
			return nil, err
		default:
			opts = loaded
		}
	}

	return &ValidatingParser{
		Parser:     NewParser(opts, b.logger),
		validators: append([]ValidatorFunc(nil), b.validators...),
	}, settingsErr
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *ValidatingParser {
	p, err := b.Build()
	if err != nil && !errors.Is(err, ErrSettingsNotFound) {
		panic(fmt.Sprintf("parser build failed: %v", err))
	}
	return p
}

// ParseFile builds the parser and parses path in one step
func (b *Builder) ParseFile(path string) (*Tree, error) {
	p, err := b.Build()
	if err != nil && !errors.Is(err, ErrSettingsNotFound) {
		return nil, err
	}
	return p.ParseFile(path)
}

// ValidatingParser is a Parser that runs validators over every tree it produces.
type ValidatingParser struct {
	*Parser
	validators []ValidatorFunc
}

// Parse parses r and validates the result.
func (p *ValidatingParser) Parse(r io.Reader) (*Tree, error) {
	tree, err := p.Parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return p.validate(tree)
}

// ParseString parses s and validates the result.
func (p *ValidatingParser) ParseString(s string) (*Tree, error) {
	return p.Parse(strings.NewReader(s))
}

// ParseFile parses the file at path and validates the result.
func (p *ValidatingParser) ParseFile(path string) (*Tree, error) {
	tree, err := p.Parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return p.validate(tree)
}

// Watch is Parser.Watch with every reloaded tree validated. A rejected tree is
// delivered as WatchEvent.Err.
func (p *ValidatingParser) Watch(ctx context.Context, path string, opts WatchOptions) <-chan WatchEvent {
	return p.Parser.watch(ctx, path, opts, p.ParseFile)
}

func (p *ValidatingParser) validate(tree *Tree) (*Tree, error) {
	var errs []error
	for _, validator := range p.validators {
		if err := validator(tree); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return tree, nil
}

// RequireDirective returns a validator rejecting trees in which path selects nothing.
func RequireDirective(path string, argPrefix ...string) ValidatorFunc {
	return func(t *Tree) error {
		if len(t.Select(path, argPrefix...)) == 0 {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil
	}
}
