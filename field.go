package fieldschema

import (
	"reflect"
	"strings"
)

// Kind tags which specialization produced a descriptor. The tag is
// informational; rule methods are what actually constrain values.
type Kind string

const (
	KindString Kind = "string"
	KindArray  Kind = "array"
	KindFile   Kind = "file"
	KindDate   Kind = "date"
)

// Check is a custom validation predicate. A nil return means the value
// passed; a non-nil error's text is collected as the failure message.
type Check func(value any) error

// Builder is the untyped starting point returned by Field. It carries only
// the field name until one of the kind selectors narrows it into a typed
// descriptor.
type Builder struct {
	name string
}

// Field starts building a validation descriptor for the named field.
func Field(name string) *Builder {
	return &Builder{name: name}
}

func (b *Builder) String() *StringField { return &StringField{newBase(b.name, KindString)} }
func (b *Builder) Array() *ArrayField   { return &ArrayField{newBase(b.name, KindArray)} }
func (b *Builder) File() *FileField     { return &FileField{newBase(b.name, KindFile)} }
func (b *Builder) Date() *DateField     { return &DateField{newBase(b.name, KindDate)} }

// base holds the state shared by every typed descriptor: the field name,
// the kind tag, the required flag, the ordered checks and the per-criterion
// message overrides. Descriptors are configured once by the caller and are
// read-only during validation, so a fully built schema is safe for
// concurrent Validate calls.
type base struct {
	name     string
	kind     Kind
	required bool
	checks   []Check
	messages map[string]string
}

func newBase(name string, kind Kind) base {
	return base{name: name, kind: kind, messages: make(map[string]string)}
}

func (b *base) schemaEntry() {}

// Name returns the raw field name the descriptor was built with.
func (b *base) Name() string { return b.name }

// Kind returns the specialization tag.
func (b *base) Kind() Kind { return b.kind }

// Validate evaluates the required check first (at most once), then every
// registered check in registration order. Failures accumulate; the result
// is nil when everything passed. Validate never mutates the descriptor, so
// the same descriptor can be reused across many data objects.
func (b *base) Validate(value any) []string {
	var errs []string

	if b.required {
		Assert(b.name != "", "fieldschema: required check on a descriptor without a field name")
		if isEmpty(value) {
			errs = append(errs, b.message("required"))
		}
	}

	for _, check := range b.checks {
		if err := check(value); err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}

func (b *base) setRequired(message []string) {
	b.required = true
	b.setOverride("required", message)
}

func (b *base) setOverride(criterion string, message []string) {
	if len(message) > 0 && message[0] != "" {
		b.messages[criterion] = message[0]
	}
}

// isEmpty reports whether a value fails the required check. The definition
// is deliberately narrow: absent values, blank strings and empty containers
// only. Zero numbers and false booleans are real values and never count as
// empty.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	}

	return false
}
