// FILE: lixenwraith/apacheconf/parser.go
package apacheconf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Parser turns configuration text into a Tree. A Parser holds no per-input state and
// may be reused.
type Parser struct {
	opts   Options
	logger *zap.Logger
}

// NewParser creates a parser. A nil logger disables logging.
func NewParser(opts Options, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{opts: opts.normalize(), logger: logger}
}

// Options returns the parser's options.
func (p *Parser) Options() Options {
	return p.opts
}

// parseState is the open-block stack and line counter of one parse.
type parseState struct {
	tree  *Tree
	stack []NodeID // innermost open container last; stack[0] is the root
	line  int
}

func (s *parseState) fail(err error) error {
	return &ParseError{Source: s.tree.source, Line: s.line, Err: err}
}

// Parse reads r to the end and builds the tree. The first malformed line aborts the
// parse; no partial tree is returned.
func (p *Parser) Parse(r io.Reader) (*Tree, error) {
	tree := NewTree(p.opts.Source)
	tree.indent = p.opts.Indent
	st := &parseState{tree: tree, stack: []NodeID{0}}

	br := bufio.NewReader(r)
	for {
		raw, readErr := br.ReadString('\n')
		if raw != "" {
			st.line++
			if err := p.parseLine(st, raw); err != nil {
				return nil, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p.opts.Source, readErr)
		}
	}

	if err := p.finish(st); err != nil {
		return nil, err
	}

	p.logger.Debug("Parsed configuration",
		zap.String("source", p.opts.Source),
		zap.Int("lines", st.line),
		zap.Int("nodes", tree.Len()-1))
	return tree, nil
}

// ParseBytes parses an in-memory configuration.
func (p *Parser) ParseBytes(data []byte) (*Tree, error) {
	return p.Parse(bytes.NewReader(data))
}

// ParseString parses an in-memory configuration.
func (p *Parser) ParseString(s string) (*Tree, error) {
	return p.Parse(strings.NewReader(s))
}

func (p *Parser) parseLine(st *parseState, raw string) error {
	l := classifyLine(raw)
	top := st.stack[len(st.stack)-1]

	var (
		n   node
		err error
	)
	switch l.kind {
	case lineSectionClose:
		return p.closeSection(st, l.name)
	case lineComment:
		n = newComment(l)
	case lineStatement:
		n, err = newStatement(l)
	case lineSectionOpen:
		n, err = newSection(l)
	case lineBlank:
		n = node{kind: KindBlank}
	default:
		return st.fail(ErrMalformedLine)
	}
	if err != nil {
		return st.fail(err)
	}

	n.line = st.line
	id := st.tree.add(top, n)
	if n.kind == KindSection {
		st.stack = append(st.stack, id)
	}
	return nil
}

// closeSection pops the innermost open section.
func (p *Parser) closeSection(st *parseState, name string) error {
	if len(st.stack) == 1 {
		return st.fail(fmt.Errorf("%w: </%s>", ErrUnbalancedClose, name))
	}

	open := &st.tree.nodes[st.stack[len(st.stack)-1]]
	if !strings.EqualFold(open.name, name) {
		if p.opts.StrictClose {
			return st.fail(fmt.Errorf("%w: </%s> closes <%s> opened at line %d",
				ErrMismatchedClose, name, open.name, open.line))
		}
		p.logger.Debug("Closing tag does not match open section",
			zap.String("source", st.tree.source),
			zap.Int("line", st.line),
			zap.String("close", name),
			zap.String("open", open.name))
	}

	st.stack = st.stack[:len(st.stack)-1]
	return nil
}

// finish records sections left open at end of input.
func (p *Parser) finish(st *parseState) error {
	if len(st.stack) == 1 {
		return nil
	}

	st.tree.unclosed = append([]NodeID(nil), st.stack[1:]...)
	innermost := st.tree.nodes[st.stack[len(st.stack)-1]]

	if p.opts.RequireClosed {
		return &ParseError{
			Source: st.tree.source,
			Line:   innermost.line,
			Err:    fmt.Errorf("%w: <%s>", ErrUnclosedSection, innermost.name),
		}
	}

	for _, id := range st.tree.unclosed {
		open := st.tree.nodes[id]
		p.logger.Warn("Section not closed before end of input",
			zap.String("source", st.tree.source),
			zap.String("section", open.name),
			zap.Int("line", open.line))
	}
	return nil
}

// Parse parses r with opts.
func Parse(r io.Reader, opts Options) (*Tree, error) {
	return NewParser(opts, nil).Parse(r)
}

// ParseString parses s with DefaultOptions.
func ParseString(s string) (*Tree, error) {
	return NewParser(DefaultOptions(), nil).ParseString(s)
}

// MustParse is like ParseString but panics on error.
func MustParse(s string) *Tree {
	tree, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("apacheconf: parse failed: %v", err))
	}
	return tree
}
