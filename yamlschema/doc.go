// Package yamlschema builds fieldschema schemas from declarative YAML
// definitions, so validation rules can live next to configuration instead
// of code.
//
// A definition is a mapping from field names to either a leaf field
// definition or, recursively, another mapping of nested fields. A mapping
// is a leaf when it carries a scalar "type" key naming one of the four
// field kinds: string, array, file or date.
//
//	name:
//	  type: string
//	  required: true
//	  min_len: 2
//	address:
//	  city:
//	    type: string
//	    required: true
//	    messages:
//	      required: Please provide a city
//	attachments:
//	  type: array
//	  max_items: 5
//	starts_at:
//	  type: date
//	  only_future: true
//
// Every leaf accepts "required" and a "messages" mapping of per-criterion
// overrides. Kind-specific keys follow the rule methods of the matching
// descriptor: min_len, max_len, email, pattern (with optional
// pattern_name), uuid for strings; min_items, max_items for arrays;
// max_size, extensions for files; only_future, before, after (RFC 3339 or
// YYYY-MM-DD) for dates. Keys that do not belong to the declared type are
// rejected with a descriptive error naming the field path.
//
// Parse operates on bytes supplied by the caller and performs no file
// access itself.
package yamlschema
