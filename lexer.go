// FILE: lixenwraith/apacheconf/lexer.go
package apacheconf

import (
	"regexp"
	"strings"
)

// lineKind is the result of classifying one raw line.
type lineKind int

const (
	lineInvalid lineKind = iota
	lineComment
	lineStatement
	lineSectionOpen
	lineSectionClose
	lineBlank
)

func (k lineKind) String() string {
	switch k {
	case lineComment:
		return "comment"
	case lineStatement:
		return "statement"
	case lineSectionOpen:
		return "section-open"
	case lineSectionClose:
		return "section-close"
	case lineBlank:
		return "blank"
	default:
		return "invalid"
	}
}

// Patterns are tried in declaration order; the first match wins.
var (
	commentPattern      = regexp.MustCompile(`^\s*#\s*(.*)$`)
	statementPattern    = regexp.MustCompile(`^\s*[^\s<]`)
	sectionOpenPattern  = regexp.MustCompile(`^\s*<([^\s<>/][^\s<>]*)(?:\s+(.*))?>\s*$`)
	sectionClosePattern = regexp.MustCompile(`^\s*</([^\s>]+).*>\s*$`)
)

// lexedLine carries the captures of a classified line. Argument tokenization is left
// to node construction.
type lexedLine struct {
	kind    lineKind
	text    string // line without terminator
	name    string // section name (open and close)
	rest    string // raw section-open remainder, trimmed
	comment string // comment payload
}

// classifyLine strips a trailing "\n" or "\r\n" and classifies what is left.
func classifyLine(raw string) lexedLine {
	text := strings.TrimSuffix(raw, "\n")
	text = strings.TrimSuffix(text, "\r")
	l := lexedLine{text: text}

	if m := commentPattern.FindStringSubmatch(text); m != nil {
		l.kind = lineComment
		l.comment = m[1]
		return l
	}
	if statementPattern.MatchString(text) {
		l.kind = lineStatement
		return l
	}
	if m := sectionOpenPattern.FindStringSubmatch(text); m != nil {
		l.kind = lineSectionOpen
		l.name = m[1]
		l.rest = strings.TrimSpace(m[2])
		return l
	}
	if m := sectionClosePattern.FindStringSubmatch(text); m != nil {
		l.kind = lineSectionClose
		l.name = m[1]
		return l
	}
	if strings.TrimSpace(text) == "" {
		l.kind = lineBlank
		return l
	}
	l.kind = lineInvalid
	return l
}
