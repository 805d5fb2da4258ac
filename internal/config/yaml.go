package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// readYAMLTree reads and decodes the YAML document at path. Errors from
// os.ReadFile are returned unwrapped so callers can test for fs.ErrNotExist.
// An empty document yields an empty tree; a document whose top level is not
// a mapping is malformed.
func readYAMLTree(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedConfig, path, err)
	}

	switch doc := raw.(type) {
	case nil:
		return Tree{}, nil
	case map[string]any, map[any]any:
		return valueOf(doc).Tree(), nil
	default:
		return nil, fmt.Errorf("%w %s: top-level document is %T, want a mapping", ErrMalformedConfig, path, raw)
	}
}
