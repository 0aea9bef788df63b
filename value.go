// File: lixenwraith/apacheconf/value.go
package apacheconf

import (
	"fmt"
	"strconv"
	"strings"
)

// first returns the first node selected by path.
func (t *Tree) first(path string) (Node, error) {
	found := t.Select(path)
	if len(found) == 0 {
		return Node{}, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return found[0], nil
}

// firstArg returns the first argument of the first node selected by path.
func (t *Tree) firstArg(path string) (string, error) {
	n, err := t.first(path)
	if err != nil {
		return "", err
	}
	args := n.rec().args
	if len(args) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoArguments, path)
	}
	return args[0], nil
}

// Value returns the arguments of the first node at path joined by single spaces.
func (t *Tree) Value(path string) (string, error) {
	n, err := t.first(path)
	if err != nil {
		return "", err
	}
	if n.Kind() == KindComment {
		return n.Comment(), nil
	}
	return strings.Join(n.rec().args, " "), nil
}

// Values returns a copy of the arguments of the first node at path.
func (t *Tree) Values(path string) ([]string, error) {
	n, err := t.first(path)
	if err != nil {
		return nil, err
	}
	return n.Args(), nil
}

// Int64 parses the first argument at path. Base prefixes such as 0x are honored.
func (t *Tree) Int64(path string) (int64, error) {
	s, err := t.firstArg(path)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to int64 for path %s: %w", s, path, err)
	}
	return i, nil
}

// Float64 parses the first argument at path.
func (t *Tree) Float64(path string) (float64, error) {
	s, err := t.firstArg(path)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to float64 for path %s: %w", s, path, err)
	}
	return f, nil
}

// Bool interprets the first argument at path. Apache's On/Off are accepted in any
// case, as are the forms understood by strconv.ParseBool.
func (t *Tree) Bool(path string) (bool, error) {
	s, err := t.firstArg(path)
	if err != nil {
		return false, err
	}
	return parseSwitch(s)
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("cannot convert %q to bool: %w", s, err)
	}
	return b, nil
}
