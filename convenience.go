// File: lixenwraith/apacheconf/convenience.go
package apacheconf

import "fmt"

// SelectWords is Select with the argument prefix given as one shell-quoted string,
// the way it is typed on a command line. An empty string selects without a filter.
func (t *Tree) SelectWords(path, current string) (Items, error) {
	prefix, err := SplitWords(current)
	if err != nil {
		return nil, fmt.Errorf("invalid argument filter %q: %w", current, err)
	}
	return t.Select(path, prefix...), nil
}

// Replace shell-splits value and replaces all arguments of every member with the words.
func (l Items) Replace(value string) (Items, error) {
	words, err := SplitWords(value)
	if err != nil {
		return nil, fmt.Errorf("invalid replacement %q: %w", value, err)
	}
	return l.Update(words, true), nil
}

// Quick parses path with DefaultOptions and selects query in one call.
func Quick(path, query string) (*Tree, Items, error) {
	tree, err := ParseFile(path, DefaultOptions())
	if err != nil {
		return nil, nil, err
	}
	return tree, tree.Select(query), nil
}

// QuickEdit parses path, replaces the arguments of every node matching query and
// current, and saves the file atomically. It returns the updated nodes; nothing is
// written when no node matches.
func QuickEdit(path, query, current, value string, opts Options) (Items, error) {
	tree, err := ParseFile(path, opts)
	if err != nil {
		return nil, err
	}

	matched, err := tree.SelectWords(query, current)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, query)
	}

	if _, err := matched.Replace(value); err != nil {
		return nil, err
	}
	if err := tree.Save(path); err != nil {
		return nil, err
	}
	return matched, nil
}
