// FILE: lixenwraith/apacheconf/options.go
package apacheconf

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultIndent is the rendering unit per nesting level.
	DefaultIndent = "    "
	// DefaultSource names input that did not come from a file.
	DefaultSource = "<input>"
)

// Options controls parsing and rendering.
type Options struct {
	// Indent is repeated once per nesting level when rendering (empty = DefaultIndent)
	Indent string `toml:"indent"`

	// Source identifies the input in error messages
	Source string `toml:"source"`

	// StrictClose rejects a closing tag whose name differs from the innermost open section
	StrictClose bool `toml:"strict_close"`

	// RequireClosed turns sections left open at end of input into an error
	RequireClosed bool `toml:"require_closed"`

	// MaxFileSize limits ParseFile input in bytes (0 = unlimited)
	MaxFileSize int64 `toml:"max_file_size"`
}

// DefaultOptions returns the standard options: four-space indent, strict closing tags,
// unclosed sections tolerated.
func DefaultOptions() Options {
	return Options{
		Indent:      DefaultIndent,
		Source:      DefaultSource,
		StrictClose: true,
	}
}

// LoadOptionsFile decodes a TOML settings file on top of DefaultOptions.
//
//	indent = "\t"
//	strict_close = false
//	require_closed = true
//	max_file_size = 1048576
//
// Keys absent from the file keep their default values.
func LoadOptionsFile(path string) (Options, error) {
	return loadOptionsOver(path, DefaultOptions())
}

// loadOptionsOver decodes the settings file on top of base.
func loadOptionsOver(path string, base Options) (Options, error) {
	opts := base

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, ErrSettingsNotFound
		}
		return opts, fmt.Errorf("failed to read settings file '%s': %w", path, err)
	}

	meta, err := toml.Decode(string(data), &opts)
	if err != nil {
		return base, fmt.Errorf("failed to parse TOML settings file '%s': %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("unknown key %q in settings file '%s'", undecoded[0].String(), path)
	}

	return opts, nil
}

// normalize fills zero values with their defaults.
func (o Options) normalize() Options {
	if o.Source == "" {
		o.Source = DefaultSource
	}
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	return o
}
