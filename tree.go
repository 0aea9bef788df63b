// FILE: lixenwraith/apacheconf/tree.go
package apacheconf

// Tree owns every node of one parsed configuration. Nodes refer to their parent and
// children by NodeID, never by pointer.
//
// A Tree is not safe for concurrent mutation. Concurrent read-only queries are fine.
type Tree struct {
	source   string
	indent   string
	nodes    []node
	unclosed []NodeID
}

// NewTree returns a tree holding only a root node.
func NewTree(source string) *Tree {
	return &Tree{
		source: source,
		indent: DefaultIndent,
		nodes:  []node{{kind: KindRoot, parent: NoNode}},
	}
}

// Root returns the root node. Its children are the top-level lines of the input.
func (t *Tree) Root() Node {
	return Node{tree: t, id: 0}
}

// Source is the identifier used in parse errors, usually the file name.
func (t *Tree) Source() string {
	return t.source
}

// Indent returns the unit repeated once per nesting level when rendering.
func (t *Tree) Indent() string {
	return t.indent
}

// SetIndent changes the indentation unit used by Render.
func (t *Tree) SetIndent(indent string) {
	t.indent = indent
}

// Len returns the number of nodes including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the handle for id, or an invalid Node when id is out of range.
func (t *Tree) Node(id NodeID) Node {
	n := Node{tree: t, id: id}
	if !n.Valid() {
		return Node{}
	}
	return n
}

// Unclosed lists sections still open when the input ended, outermost first.
func (t *Tree) Unclosed() Items {
	items := make(Items, len(t.unclosed))
	for i, id := range t.unclosed {
		items[i] = Node{tree: t, id: id}
	}
	return items
}

// add stores n as the last child of parent and returns its id.
func (t *Tree) add(parent NodeID, n node) NodeID {
	id := NodeID(len(t.nodes))
	n.parent = parent
	t.nodes = append(t.nodes, n)
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Render renders the whole tree with the tree's indentation unit.
func (t *Tree) Render() []byte {
	return Renderer{Indent: t.indent}.Render(t.Root())
}

func (t *Tree) String() string {
	return string(t.Render())
}
