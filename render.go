// FILE: lixenwraith/apacheconf/render.go
package apacheconf

import "strings"

// Renderer reconstructs configuration text from a tree.
type Renderer struct {
	Indent string // repeated once per nesting level; empty means DefaultIndent
}

// Render renders n and everything below it. Lines are joined with "\n" and the
// result carries no trailing newline.
func (r Renderer) Render(n Node) []byte {
	return []byte(strings.Join(r.Lines(n), "\n"))
}

// Lines renders n as individual lines. n itself is rendered at depth 0; the root is
// rendered at depth -1 so its children start unindented.
func (r Renderer) Lines(n Node) []string {
	depth := 0
	if n.Kind() == KindRoot {
		depth = -1
	}
	return r.appendLines(nil, n.tree, n.id, depth)
}

func (r Renderer) appendLines(lines []string, t *Tree, id NodeID, depth int) []string {
	rec := &t.nodes[id]
	switch rec.kind {
	case KindRoot:
		for _, child := range rec.children {
			lines = r.appendLines(lines, t, child, depth+1)
		}
	case KindSection:
		indent := r.indent(depth)
		lines = append(lines, indent+renderHead(rec))
		for _, child := range rec.children {
			lines = r.appendLines(lines, t, child, depth+1)
		}
		lines = append(lines, indent+"</"+rec.name+">")
	default:
		lines = append(lines, r.indent(depth)+renderHead(rec))
	}
	return lines
}

func (r Renderer) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	unit := r.Indent
	if unit == "" {
		unit = DefaultIndent
	}
	return strings.Repeat(unit, depth)
}

// renderHead renders a node's own line: the open tag of a section, the directive line
// of a statement, the text of a comment.
func renderHead(n *node) string {
	switch n.kind {
	case KindSection:
		if len(n.args) == 0 {
			return "<" + n.name + ">"
		}
		return "<" + n.name + " " + joinWords(n.args) + ">"
	case KindStatement:
		if len(n.args) == 0 {
			return QuoteWord(n.name)
		}
		return QuoteWord(n.name) + " " + joinWords(n.args)
	case KindComment:
		return "# " + n.comment
	default:
		return ""
	}
}
