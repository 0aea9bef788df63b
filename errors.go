// FILE: lixenwraith/apacheconf/errors.go
package apacheconf

import (
	"errors"
	"fmt"
)

// Sentinel errors. Parse failures are reported as *ParseError wrapping one of these,
// so callers can test with errors.Is.
var (
	ErrMalformedLine    = errors.New("line matches no known construct")
	ErrMissingName      = errors.New("missing directive or section name")
	ErrTokenize         = errors.New("cannot split arguments")
	ErrUnbalancedClose  = errors.New("closing tag without open section")
	ErrMismatchedClose  = errors.New("closing tag does not match open section")
	ErrUnclosedSection  = errors.New("section not closed before end of input")
	ErrFileNotFound     = errors.New("configuration file not found")
	ErrFileTooLarge     = errors.New("configuration file exceeds maximum size")
	ErrSettingsNotFound = errors.New("settings file not found")
	ErrPathNotFound     = errors.New("no node matches path")
	ErrNoArguments      = errors.New("node has no arguments")
	ErrNotContainer     = errors.New("node cannot hold children")
	ErrUnknownFormat    = errors.New("unknown export format")
)

// ParseError reports a structural or tokenization failure at a source line.
type ParseError struct {
	Source string // file name or other input identifier
	Line   int    // 1-based
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s at line %d: %v", e.Source, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
