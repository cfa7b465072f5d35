package fieldschema

import (
	"fmt"
	"slices"
	"strings"
)

// Messages is the ordered list of failure texts collected for a single
// field. Order follows check evaluation: the required check first, then
// custom criteria in registration order.
type Messages []string

// Error implements the error interface.
func (m Messages) Error() string {
	return strings.Join(m, "; ")
}

// Errors is a sparse tree of validation failures mirroring the schema's
// nesting: values are either Messages for a leaf field or a nested Errors
// map. A field that passed is absent entirely. Both value types marshal to
// JSON naturally, a string array for leaves and an object for nested maps.
type Errors map[string]error

// Error implements the error interface. It summarizes the first message of
// each failed field, which is usually enough for logs; render the full tree
// for end users instead.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		switch v := e[field].(type) {
		case Messages:
			if len(v) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %s", field, v[0]))
			}
		case Errors:
			parts = append(parts, fmt.Sprintf("%s: (%s)", field, v.Error()))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// IsEmpty reports whether no field failed.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the field has any errors, leaf or nested.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the leaf messages for a field, or nil when the field passed
// or holds a nested map.
func (e Errors) Get(field string) []string {
	if msgs, ok := e[field].(Messages); ok {
		return msgs
	}
	return nil
}

// Nested returns the nested error map for a field, or nil when the field
// passed or is a leaf.
func (e Errors) Nested(field string) Errors {
	if nested, ok := e[field].(Errors); ok {
		return nested
	}
	return nil
}

// Fields returns the names of all failed fields at this level, sorted for
// deterministic output.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}
