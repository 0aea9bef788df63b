// FILE: lixenwraith/apacheconf/node.go
package apacheconf

import (
	"fmt"
	"strings"
)

// Kind discriminates the node variants of a Tree.
type Kind uint8

const (
	KindRoot Kind = iota
	KindSection
	KindStatement
	KindComment
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindSection:
		return "section"
	case KindStatement:
		return "statement"
	case KindComment:
		return "comment"
	case KindBlank:
		return "blank"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// NodeID indexes a node inside its Tree.
type NodeID int

// NoNode is the parent of the root node.
const NoNode NodeID = -1

// node is the arena record. Which fields are meaningful depends on kind.
type node struct {
	kind     Kind
	name     string   // section name or statement module
	args     []string // section or statement arguments
	argsSet  bool     // false for a section opened without arguments
	comment  string   // comment payload
	parent   NodeID
	children []NodeID
	line     int
}

// newStatement tokenizes a whole directive line: the first word is the module name.
func newStatement(l lexedLine) (node, error) {
	words, err := SplitWords(l.text)
	if err != nil {
		return node{}, err
	}
	if len(words) == 0 || words[0] == "" {
		return node{}, ErrMissingName
	}
	return node{
		kind:    KindStatement,
		name:    words[0],
		args:    words[1:],
		argsSet: true,
	}, nil
}

// newSection builds a section from an open tag. An empty remainder leaves the
// arguments unset.
func newSection(l lexedLine) (node, error) {
	if l.name == "" {
		return node{}, ErrMissingName
	}
	n := node{kind: KindSection, name: l.name}
	if l.rest != "" {
		args, err := SplitWords(l.rest)
		if err != nil {
			return node{}, err
		}
		n.args = args
		n.argsSet = true
	}
	return n, nil
}

func newComment(l lexedLine) node {
	return node{kind: KindComment, comment: l.comment}
}

// matches implements name plus argument-prefix identity for each variant.
func (n *node) matches(name string, argPrefix []string) bool {
	switch n.kind {
	case KindSection, KindStatement:
		if !strings.EqualFold(n.name, name) || len(argPrefix) > len(n.args) {
			return false
		}
		for i, a := range argPrefix {
			if n.args[i] != a {
				return false
			}
		}
		return true
	case KindComment:
		return len(argPrefix) == 0 && strings.EqualFold(n.comment, name)
	default:
		return false
	}
}

// update replaces arguments in place. Without replaceAll only the leading
// len(values) arguments are overwritten.
func (n *node) update(values []string, replaceAll bool) {
	switch n.kind {
	case KindSection, KindStatement:
		if replaceAll || len(values) >= len(n.args) {
			n.args = append([]string(nil), values...)
		} else {
			args := append([]string(nil), n.args...)
			copy(args, values)
			n.args = args
		}
		n.argsSet = true
	case KindComment:
		n.comment = strings.Join(values, " ")
	}
}

// Node is a handle on one node of a Tree. The zero Node is invalid; every method
// except Valid panics on it.
type Node struct {
	tree *Tree
	id   NodeID
}

func (n Node) rec() *node {
	return &n.tree.nodes[n.id]
}

// Valid reports whether n refers to a node.
func (n Node) Valid() bool {
	return n.tree != nil && n.id >= 0 && int(n.id) < len(n.tree.nodes)
}

func (n Node) ID() NodeID { return n.id }

func (n Node) Tree() *Tree { return n.tree }

func (n Node) Kind() Kind { return n.rec().kind }

// Line is the 1-based source line the node was parsed from; 0 for the root.
func (n Node) Line() int { return n.rec().line }

// Comment returns the payload of a comment node.
func (n Node) Comment() string {
	return n.rec().comment
}

// Name returns the section name or statement module, empty for other kinds.
func (n Node) Name() string {
	return n.rec().name
}

// Args returns a copy of the node's arguments.
func (n Node) Args() []string {
	return append([]string(nil), n.rec().args...)
}

// HasArgs distinguishes a section opened as <Name> (unset) from one carrying arguments.
func (n Node) HasArgs() bool {
	return n.rec().argsSet
}

// IsContainer reports whether the node owns children (Root or Section).
func (n Node) IsContainer() bool {
	k := n.Kind()
	return k == KindRoot || k == KindSection
}

// Parent returns the enclosing node; invalid for the root.
func (n Node) Parent() Node {
	p := n.rec().parent
	if p == NoNode {
		return Node{}
	}
	return Node{tree: n.tree, id: p}
}

// Children returns the direct children in source order.
func (n Node) Children() Items {
	ids := n.rec().children
	items := make(Items, len(ids))
	for i, id := range ids {
		items[i] = Node{tree: n.tree, id: id}
	}
	return items
}

// Depth is the nesting level: 0 for top-level nodes, -1 for the root.
func (n Node) Depth() int {
	depth := -1
	for p := n.rec().parent; p != NoNode; p = n.tree.nodes[p].parent {
		depth++
	}
	return depth
}

// Matches reports whether the node is a Section or Statement named name (case-insensitive)
// whose leading arguments equal argPrefix, or a Comment whose text equals name.
func (n Node) Matches(name string, argPrefix ...string) bool {
	return n.rec().matches(name, argPrefix)
}

// Update replaces the node's arguments (comment text for comments). Root and blank
// lines ignore updates.
func (n Node) Update(values []string, replaceAll bool) {
	n.rec().update(values, replaceAll)
}

// String renders the node's own line without indentation. Sections render their open tag.
func (n Node) String() string {
	return renderHead(n.rec())
}

// GoString is used by %#v and in test failure output.
func (n Node) GoString() string {
	r := n.rec()
	switch r.kind {
	case KindSection, KindStatement:
		return fmt.Sprintf("<%s %q @ line %d>", r.kind, r.name, r.line)
	case KindRoot:
		return "<root>"
	default:
		return fmt.Sprintf("<%s @ line %d>", r.kind, r.line)
	}
}
