// FILE: lixenwraith/apacheconf/export.go
package apacheconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export encodes the Map of n in the given format (toml, yaml or json).
func (n Node) Export(format string) ([]byte, error) {
	if !n.IsContainer() {
		return nil, fmt.Errorf("%w: %s", ErrNotContainer, n.Kind())
	}
	data := n.Map()

	switch strings.ToLower(format) {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(data); err != nil {
			return nil, fmt.Errorf("failed to marshal %s to TOML: %w", n.describe(), err)
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s to YAML: %w", n.describe(), err)
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s to JSON: %w", n.describe(), err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Export encodes the whole configuration. See Node.Export.
func (t *Tree) Export(format string) ([]byte, error) {
	return t.Root().Export(format)
}

// DetectFormat determines an export format from a file extension, or "" if unknown.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}
