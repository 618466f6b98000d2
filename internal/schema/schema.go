// Package schema declares JSON shapes as data and validates parsed values
// against them, producing one (path, message) issue per violation. Schemas
// support required/optional fields, string enumerations, and self-referential
// object arrays via lazy references.
package schema

import "fmt"

// Kind identifies the JSON shape a schema node accepts.
type Kind int

const (
	KindString Kind = iota
	KindObject
	KindArray
)

// MaxDepth bounds recursion while validating self-referential schemas.
// Exceeding it is reported as an issue, never a panic.
const MaxDepth = 64

// Issue is a single validation failure at a JSON path.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Schema describes one node of an expected JSON shape.
type Schema struct {
	Kind   Kind
	Enum   []string           // KindString: allowed values, nil means any string
	Fields map[string]Field   // KindObject
	Elem   *Schema            // KindArray: element shape
	ref    func() *Schema     // lazy self-reference, set via Ref
}

// Field is a named object member.
type Field struct {
	Schema   *Schema
	Required bool
}

// String returns a schema accepting any string.
func String() *Schema {
	return &Schema{Kind: KindString}
}

// Enum returns a schema accepting only the given string literals.
func Enum(values ...string) *Schema {
	return &Schema{Kind: KindString, Enum: values}
}

// Object returns a schema accepting a JSON object with the given fields.
// Unknown members are ignored; the oracle is allowed to over-answer.
func Object(fields map[string]Field) *Schema {
	return &Schema{Kind: KindObject, Fields: fields}
}

// Array returns a schema accepting a JSON array of elem.
func Array(elem *Schema) *Schema {
	return &Schema{Kind: KindArray, Elem: elem}
}

// Ref returns a schema resolved lazily at validation time, allowing a
// schema to contain itself (Task.subtasks is an array of Task).
func Ref(resolve func() *Schema) *Schema {
	return &Schema{ref: resolve}
}

// Validate checks a parsed JSON value (the any-typed result of
// json.Unmarshal) against the schema. A nil return means conformant.
func (s *Schema) Validate(value any) []Issue {
	var issues []Issue
	s.validate(value, "$", 0, &issues)
	return issues
}

func (s *Schema) validate(value any, path string, depth int, issues *[]Issue) {
	if s.ref != nil {
		s = s.ref()
	}
	if depth > MaxDepth {
		*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("nesting exceeds maximum depth %d", MaxDepth)})
		return
	}

	switch s.Kind {
	case KindString:
		str, ok := value.(string)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected string, got %s", typeName(value))})
			return
		}
		if len(s.Enum) > 0 && !contains(s.Enum, str) {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("value %q is not one of %v", str, s.Enum)})
		}

	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected object, got %s", typeName(value))})
			return
		}
		for name, field := range s.Fields {
			fieldPath := path + "." + name
			v, present := obj[name]
			if !present || v == nil {
				if field.Required {
					*issues = append(*issues, Issue{Path: fieldPath, Message: "required field is missing"})
				}
				continue
			}
			field.Schema.validate(v, fieldPath, depth+1, issues)
		}

	case KindArray:
		arr, ok := value.([]any)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected array, got %s", typeName(value))})
			return
		}
		for i, v := range arr {
			s.Elem.validate(v, fmt.Sprintf("%s[%d]", path, i), depth+1, issues)
		}
	}
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
