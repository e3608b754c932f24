package consent

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCategoriesFile reads categories from a YAML file (see ParseCategories).
func LoadCategoriesFile(path string) ([]Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCategories, err)
	}
	defer f.Close()

	cats, err := ParseCategories(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cats, nil
}

// ParseCategories reads an ordered category mapping from YAML. The mapping
// can sit at the document root or under a top-level "categories" key:
//
//	categories:
//	  necessary:
//	    name: categories.necessary.name
//	    description: categories.necessary.description
//	    required: true
//	  analytics:
//	    name: categories.analytics.name
//	    description: categories.analytics.description
//
// Document order is kept. The result is not validated; use Config.Validate.
func ParseCategories(r io.Reader) ([]Category, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCategories, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidCategories, root.Line)
	}

	if wrapped := mappingValue(root, "categories"); wrapped != nil && len(root.Content) == 2 {
		root = wrapped
		if root.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: \"categories\" must be a mapping (line %d)", ErrInvalidCategories, root.Line)
		}
	}

	cats := make([]Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var cat Category
		if err := valueNode.Decode(&cat); err != nil {
			return nil, fmt.Errorf("%w: category %q: %w", ErrInvalidCategories, keyNode.Value, err)
		}
		cat.Key = keyNode.Value
		cats = append(cats, cat)
	}
	return cats, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
