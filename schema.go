package fieldschema

// Entry is a schema node: either a built descriptor (leaf) or a nested
// Schema. The interface is sealed so the leaf/nested dispatch in Validate is
// decided by the type system rather than a runtime marker.
type Entry interface {
	schemaEntry()
}

// Descriptor is the leaf side of the schema union: any built, typed field
// descriptor.
type Descriptor interface {
	Entry
	Name() string
	Kind() Kind
	Validate(value any) []string
}

// Schema maps field names to descriptors or nested schemas. Build it once,
// then reuse it; a schema that is no longer being configured is safe for
// concurrent Validate calls.
type Schema map[string]Entry

func (Schema) schemaEntry() {}

// Validate applies the schema to data and returns the sparse error tree.
// For each key: a leaf descriptor runs against the value looked up under
// the same key (absent keys validate as nil), a nested schema recurses into
// the corresponding nested map. Keys with no errors are omitted; an empty
// result means the data passed. Validate is pure and idempotent.
func Validate(schema Schema, data map[string]any) Errors {
	errs := make(Errors)

	for name, entry := range schema {
		switch e := entry.(type) {
		case Schema:
			nested, _ := data[name].(map[string]any)
			if inner := Validate(e, nested); !inner.IsEmpty() {
				errs[name] = inner
			}
		case Descriptor:
			if msgs := e.Validate(data[name]); len(msgs) > 0 {
				errs[name] = Messages(msgs)
			}
		}
	}

	return errs
}
