package fieldschema

import (
	"errors"
	"reflect"
)

// ArrayField validates slice, array and map (set) containers.
type ArrayField struct {
	base
}

// Required marks the field mandatory. An optional message overrides the
// default "<Field> is required" text.
func (f *ArrayField) Required(message ...string) *ArrayField {
	f.setRequired(message)
	return f
}

// Custom appends a caller-supplied predicate, run in registration order.
func (f *ArrayField) Custom(fn Check) *ArrayField {
	f.checks = append(f.checks, fn)
	return f
}

// Message overrides the failure text for the named criterion.
func (f *ArrayField) Message(criterion, message string) *ArrayField {
	f.messages[criterion] = message
	return f
}

// MinItems requires at least n elements.
func (f *ArrayField) MinItems(n int, message ...string) *ArrayField {
	f.setOverride("min_items", message)
	f.checks = append(f.checks, f.lenCheck("min_items", []any{n}, func(length int) bool {
		return length >= n
	}))
	return f
}

// MaxItems requires at most n elements.
func (f *ArrayField) MaxItems(n int, message ...string) *ArrayField {
	f.setOverride("max_items", message)
	f.checks = append(f.checks, f.lenCheck("max_items", []any{n}, func(length int) bool {
		return length <= n
	}))
	return f
}

// lenCheck wraps a length predicate into a Check. Absent values and empty
// containers pass silently, presence is governed solely by Required.
// Non-container values fail with the type message.
func (f *ArrayField) lenCheck(criterion string, args []any, ok func(length int) bool) Check {
	return func(value any) error {
		if value == nil {
			return nil
		}
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
		default:
			return errors.New(f.message("array"))
		}
		if rv.Len() == 0 {
			return nil
		}
		if ok(rv.Len()) {
			return nil
		}
		return errors.New(f.message(criterion, args...))
	}
}
