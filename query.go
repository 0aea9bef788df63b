// FILE: lixenwraith/apacheconf/query.go
package apacheconf

import "strings"

// PathSeparator splits the segments of a query path.
const PathSeparator = "."

// SplitPath splits a dotted query path into its name segments. Empty segments are
// dropped, so "a..b" and ".a.b." equal "a.b".
func SplitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, PathSeparator) {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// Select resolves a dotted path from the root. The first segment is matched against
// top-level nodes, each later segment against the children of the previous result set.
// argPrefix filters the last segment only. A miss returns an empty list.
func (t *Tree) Select(path string, argPrefix ...string) Items {
	return t.Root().Select(path, argPrefix...)
}

// Query is Select without an argument filter.
func (t *Tree) Query(path string) Items {
	return t.Select(path)
}

// Select resolves a dotted path below the container n. See Tree.Select.
func (n Node) Select(path string, argPrefix ...string) Items {
	segments := SplitPath(path)
	if len(segments) == 0 || !n.IsContainer() {
		return nil
	}

	prefixFor := func(i int) []string {
		if i == len(segments)-1 {
			return argPrefix
		}
		return nil
	}

	found := n.Children().FindAll(segments[0], prefixFor(0)...)
	for i := 1; i < len(segments) && len(found) > 0; i++ {
		found = found.FindChildren(segments[i], prefixFor(i)...)
	}
	return found
}

// Path returns the dotted path of section and statement names leading to n.
func (n Node) Path() string {
	var names []string
	for cur := n; cur.Valid() && cur.Kind() != KindRoot; cur = cur.Parent() {
		name := cur.Name()
		if cur.Kind() == KindComment {
			name = cur.Comment()
		}
		names = append(names, name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, PathSeparator)
}
