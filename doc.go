// Package fieldschema provides declarative, per-field validation with
// human-readable error messages and recursive support for nested objects.
//
// Callers describe each field with a fluent builder, group the built
// descriptors into a Schema mirroring the shape of their data, and run
// Validate to collect every failure into a sparse error tree.
//
// # Architecture
//
// Field starts an untyped builder that one of the four kind selectors,
// String, Array, File or Date, narrows into a typed descriptor. Each
// descriptor owns its field name, its required flag, an ordered list of
// checks and per-criterion message overrides. Kind-specific rule methods
// (MinLen, MinItems, MaxSize, OnlyFuture, ...) and caller predicates added
// with Custom all append to the same ordered check list.
//
// A Schema maps field names to entries; an entry is statically either a
// built descriptor (leaf) or another Schema (nested object), so the
// recursive walk in Validate needs no runtime markers. The resulting Errors
// tree mirrors the schema's nesting and contains only fields that failed.
//
// # Usage
//
//	schema := fieldschema.Schema{
//		"name": fieldschema.Field("name").String().Required(),
//		"address": fieldschema.Schema{
//			"city": fieldschema.Field("city").String().Required(),
//		},
//	}
//
//	errs := fieldschema.Validate(schema, map[string]any{
//		"name":    "",
//		"address": map[string]any{"city": ""},
//	})
//	// errs == Errors{
//	//	"name":    Messages{"Name is required"},
//	//	"address": Errors{"city": Messages{"City is required"}},
//	// }
//
// # Error Handling
//
// Validation failures are data, not errors in the Go sense: Validate always
// returns normally and collects failure messages into the Errors tree.
// Programmer errors, such as a descriptor without a field name, panic via
// Assert. Internal inconsistencies, such as a criterion with no default
// message template, are logged through log/slog (see SetLogger) and
// downgraded to a generic message so they never crash a user-facing
// request.
//
// # Concurrency
//
// Descriptors and schemas are mutated only while being built. Validate
// never writes to them, so a fully configured schema is safe for concurrent
// use from multiple goroutines without locking.
//
// The library performs no I/O and does not coerce or sanitize values; it
// only inspects them and reports. Schemas can also be defined declaratively
// in YAML via the companion yamlschema package.
package fieldschema
