package yamlschema

import (
	"fmt"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldschema"
)

// fieldDef is the YAML shape of a single leaf field. Which keys are allowed
// depends on the declared type; kindKeys enforces that before decoding.
type fieldDef struct {
	Type        string            `yaml:"type"`
	Required    bool              `yaml:"required"`
	Messages    map[string]string `yaml:"messages"`
	MinLen      *int              `yaml:"min_len"`
	MaxLen      *int              `yaml:"max_len"`
	Email       bool              `yaml:"email"`
	Pattern     string            `yaml:"pattern"`
	PatternName string            `yaml:"pattern_name"`
	UUID        bool              `yaml:"uuid"`
	MinItems    *int              `yaml:"min_items"`
	MaxItems    *int              `yaml:"max_items"`
	MaxSize     *int64            `yaml:"max_size"`
	Extensions  []string          `yaml:"extensions"`
	OnlyFuture  bool              `yaml:"only_future"`
	Before      string            `yaml:"before"`
	After       string            `yaml:"after"`
}

var sharedKeys = []string{"type", "required", "messages"}

var kindKeys = map[string][]string{
	"string": {"min_len", "max_len", "email", "pattern", "pattern_name", "uuid"},
	"array":  {"min_items", "max_items"},
	"file":   {"max_size", "extensions"},
	"date":   {"only_future", "before", "after"},
}

// Parse builds a fieldschema.Schema from a YAML document. A mapping with a
// scalar "type" key naming one of the four field kinds is a leaf field
// definition; any other mapping is a nested schema. Parse only reads the
// given bytes, it never touches the filesystem.
func Parse(data []byte) (fieldschema.Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("yamlschema: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return fieldschema.Schema{}, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yamlschema: schema definition must be a mapping, got %s", nodeKind(doc))
	}

	return parseSchema(doc, "")
}

func parseSchema(node *yaml.Node, path string) (fieldschema.Schema, error) {
	schema := make(fieldschema.Schema, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value := node.Content[i+1]
		fieldPath := joinPath(path, name)

		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("yamlschema: %s: definition must be a mapping, got %s", fieldPath, nodeKind(value))
		}

		if leafType(value) != "" {
			entry, err := parseField(name, value, fieldPath)
			if err != nil {
				return nil, err
			}
			schema[name] = entry
			continue
		}

		nested, err := parseSchema(value, fieldPath)
		if err != nil {
			return nil, err
		}
		schema[name] = nested
	}

	return schema, nil
}

// leafType returns the declared field kind when the mapping is a leaf
// definition, or "" when it should be treated as a nested schema.
func leafType(node *yaml.Node) string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "type" {
			continue
		}
		if node.Content[i+1].Kind != yaml.ScalarNode {
			return ""
		}
		switch t := node.Content[i+1].Value; t {
		case "string", "array", "file", "date":
			return t
		}
	}
	return ""
}

func parseField(name string, node *yaml.Node, path string) (fieldschema.Entry, error) {
	var def fieldDef
	if err := node.Decode(&def); err != nil {
		return nil, fmt.Errorf("yamlschema: %s: %w", path, err)
	}

	if err := checkKeys(node, def.Type, path); err != nil {
		return nil, err
	}

	switch def.Type {
	case "string":
		return buildString(name, def, path)
	case "array":
		return buildArray(name, def), nil
	case "file":
		return buildFile(name, def), nil
	case "date":
		return buildDate(name, def, path)
	}
	// leafType already filtered the kind; unreachable.
	return nil, fmt.Errorf("yamlschema: %s: unknown field type %q", path, def.Type)
}

func checkKeys(node *yaml.Node, kind, path string) error {
	allowed := make(map[string]bool, len(sharedKeys)+len(kindKeys[kind]))
	for _, k := range sharedKeys {
		allowed[k] = true
	}
	for _, k := range kindKeys[kind] {
		allowed[k] = true
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i].Value; !allowed[key] {
			return fmt.Errorf("yamlschema: %s: key %q is not valid for a %s field", path, key, kind)
		}
	}
	return nil
}

func buildString(name string, def fieldDef, path string) (*fieldschema.StringField, error) {
	f := fieldschema.Field(name).String()
	if def.Required {
		f.Required()
	}
	if def.MinLen != nil {
		f.MinLen(*def.MinLen)
	}
	if def.MaxLen != nil {
		f.MaxLen(*def.MaxLen)
	}
	if def.Email {
		f.Email()
	}
	if def.Pattern != "" {
		if _, err := regexp.Compile(def.Pattern); err != nil {
			return nil, fmt.Errorf("yamlschema: %s: invalid pattern: %w", path, err)
		}
		desc := def.PatternName
		if desc == "" {
			desc = def.Pattern
		}
		f.Match(def.Pattern, desc)
	}
	if def.UUID {
		f.UUID()
	}
	for criterion, msg := range def.Messages {
		f.Message(criterion, msg)
	}
	return f, nil
}

func buildArray(name string, def fieldDef) *fieldschema.ArrayField {
	f := fieldschema.Field(name).Array()
	if def.Required {
		f.Required()
	}
	if def.MinItems != nil {
		f.MinItems(*def.MinItems)
	}
	if def.MaxItems != nil {
		f.MaxItems(*def.MaxItems)
	}
	for criterion, msg := range def.Messages {
		f.Message(criterion, msg)
	}
	return f
}

func buildFile(name string, def fieldDef) *fieldschema.FileField {
	f := fieldschema.Field(name).File()
	if def.Required {
		f.Required()
	}
	if def.MaxSize != nil {
		f.MaxSize(*def.MaxSize)
	}
	if len(def.Extensions) > 0 {
		f.Extensions(def.Extensions)
	}
	for criterion, msg := range def.Messages {
		f.Message(criterion, msg)
	}
	return f
}

func buildDate(name string, def fieldDef, path string) (*fieldschema.DateField, error) {
	f := fieldschema.Field(name).Date()
	if def.Required {
		f.Required()
	}
	if def.OnlyFuture {
		f.OnlyFuture()
	}
	if def.Before != "" {
		t, err := parseDate(def.Before)
		if err != nil {
			return nil, fmt.Errorf("yamlschema: %s: invalid before date: %w", path, err)
		}
		f.Before(t)
	}
	if def.After != "" {
		t, err := parseDate(def.After)
		if err != nil {
			return nil, fmt.Errorf("yamlschema: %s: invalid after date: %w", path, err)
		}
		f.After(t)
	}
	for criterion, msg := range def.Messages {
		f.Message(criterion, msg)
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
