package config

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/configmapper/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats for Encode
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatText = "text"
)

// document mirrors the entries file layout
type document struct {
	Item []types.Entry `toml:"item" yaml:"item"`
}

// Encode renders entries in the entries file layout.
func Encode(entries []types.Entry, format string) ([]byte, error) {
	doc := document{Item: entries}
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return out, nil
	case FormatText:
		var buf bytes.Buffer
		for _, e := range entries {
			fmt.Fprintf(&buf, "%s: %s -> %s", e.Name, e.External, e.Target)
			if e.HasRepo() {
				fmt.Fprintf(&buf, " (repo %s)", e.Repo)
			}
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Decode parses a TOML entries document without going through koanf. It is
// stricter than LoadEntries about unknown keys at every level.
func Decode(data []byte) ([]types.Entry, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode toml: %w", err)
	}
	return doc.Item, nil
}
