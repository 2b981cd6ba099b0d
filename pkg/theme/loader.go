package theme

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var themeSchema = jsonschema.MustCompileString("theme/schema.json", schemaJSON)

// Load reads a theme document from a TOML, JSON or YAML file, decoding it
// over the default theme so omitted fields keep their standard values.
// JSON documents are additionally checked against the embedded theme
// schema, which rejects unknown fields and malformed colors before
// decoding. The loaded theme is always validated.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses a theme document in the format implied by the file
// extension (".toml", ".json", ".yaml" or ".yml").
func Decode(data []byte, ext string) (*Theme, error) {
	t := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("parse toml theme: %w", err)
		}
	case ".json":
		var doc any
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json theme: %w", err)
		}
		if err := themeSchema.Validate(doc); err != nil {
			return nil, fmt.Errorf("theme schema: %w", err)
		}
		if err := json.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("parse json theme: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("parse yaml theme: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported theme format %q", ext)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
