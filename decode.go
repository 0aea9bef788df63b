// FILE: lixenwraith/apacheconf/decode.go
package apacheconf

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ArgumentsKey holds a section's own arguments in the maps built by Node.Map.
const ArgumentsKey = "_args"

// TagName is the struct tag read by Node.Decode.
const TagName = "apache"

// Map converts a Root or Section subtree into nested maps. A statement maps to true
// without arguments, to a string with one and to a []string with more. A section maps
// to the map of its own children. Names repeated in one scope collect into []any in
// source order, keyed by the first spelling seen. Comments and blank lines are dropped.
func (n Node) Map() map[string]any {
	m := make(map[string]any)
	if n.Kind() == KindSection && n.HasArgs() {
		m[ArgumentsKey] = n.Args()
	}

	spelling := make(map[string]string) // lower-case name -> first spelling
	for _, child := range n.Children() {
		var value any
		switch child.Kind() {
		case KindStatement:
			value = statementValue(child.rec().args)
		case KindSection:
			value = child.Map()
		default:
			continue
		}

		lower := strings.ToLower(child.Name())
		key, seen := spelling[lower]
		if !seen {
			spelling[lower] = child.Name()
			m[child.Name()] = value
			continue
		}
		if list, ok := m[key].([]any); ok {
			m[key] = append(list, value)
		} else {
			m[key] = []any{m[key], value}
		}
	}
	return m
}

func statementValue(args []string) any {
	switch len(args) {
	case 0:
		return true
	case 1:
		return args[0]
	default:
		return append([]string(nil), args...)
	}
}

// Decode populates target, a non-nil struct or map pointer, from the subtree below n.
// Fields are matched through the `apache` tag, falling back to a case-insensitive match
// on the field name. Input is weakly typed: "80" fills an int, a single value fills a
// slice, On/Off fill a bool, and "30" or "30s" fill a time.Duration.
func (n Node) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}
	if !n.IsContainer() {
		return fmt.Errorf("%w: %s", ErrNotContainer, n.Kind())
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToSwitchHookFunc(),
			stringToSecondsHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(n.Map()); err != nil {
		return fmt.Errorf("decode failed for %s: %w", n.describe(), err)
	}
	return nil
}

// Decode decodes the whole configuration into target. See Node.Decode.
func (t *Tree) Decode(target any) error {
	return t.Root().Decode(target)
}

// stringToSwitchHookFunc maps Apache On/Off style strings onto bool fields.
func stringToSwitchHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return parseSwitch(data.(string))
	}
}

// stringToSecondsHookFunc decodes bare integers into time.Duration as seconds, the unit
// Apache uses for Timeout, KeepAliveTimeout and friends. Other strings are left for
// mapstructure's duration hook.
func stringToSecondsHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		s := data.(string)
		if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Duration(secs) * time.Second, nil
		}
		return data, nil
	}
}

func (n Node) describe() string {
	if n.Kind() == KindRoot {
		return n.tree.source
	}
	return fmt.Sprintf("<%s> at line %d", n.Name(), n.Line())
}
