// FILE: lixenwraith/apacheconf/items.go
package apacheconf

import "strings"

// Items is an ordered list of nodes, usually siblings or the result of a query.
type Items []Node

// Find returns the first node matching name and argPrefix.
func (l Items) Find(name string, argPrefix ...string) (Node, bool) {
	for _, n := range l {
		if n.Matches(name, argPrefix...) {
			return n, true
		}
	}
	return Node{}, false
}

// FindAll returns every matching node in list order.
func (l Items) FindAll(name string, argPrefix ...string) Items {
	var found Items
	for _, n := range l {
		if n.Matches(name, argPrefix...) {
			found = append(found, n)
		}
	}
	return found
}

// FindChild returns the first match among the direct children of the containers in l.
func (l Items) FindChild(name string, argPrefix ...string) (Node, bool) {
	for _, n := range l {
		if !n.IsContainer() {
			continue
		}
		if found, ok := n.Children().Find(name, argPrefix...); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindChildren searches one level below every container in l. Results are ordered by
// container, then by child position. Nodes deeper than one level are not visited.
func (l Items) FindChildren(name string, argPrefix ...string) Items {
	var found Items
	for _, n := range l {
		if !n.IsContainer() {
			continue
		}
		found = append(found, n.Children().FindAll(name, argPrefix...)...)
	}
	return found
}

// Update applies Node.Update to every member and returns l.
func (l Items) Update(values []string, replaceAll bool) Items {
	for _, n := range l {
		n.Update(values, replaceAll)
	}
	return l
}

// Parents returns the distinct parents of the members, in first-seen order.
// The root appears when a member is a top-level node; the root itself has no parent.
func (l Items) Parents() Items {
	var parents Items
	seen := make(map[NodeID]bool)
	for _, n := range l {
		p := n.Parent()
		if !p.Valid() || seen[p.id] {
			continue
		}
		seen[p.id] = true
		parents = append(parents, p)
	}
	return parents
}

// Render renders every member with r and joins the results with newlines.
func (l Items) Render(r Renderer) []byte {
	parts := make([]string, 0, len(l))
	for _, n := range l {
		parts = append(parts, string(r.Render(n)))
	}
	return []byte(strings.Join(parts, "\n"))
}
