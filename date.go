package fieldschema

import (
	"errors"
	"time"
)

// DateField validates time.Time values.
type DateField struct {
	base
}

// Required marks the field mandatory. An optional message overrides the
// default "<Field> is required" text.
func (f *DateField) Required(message ...string) *DateField {
	f.setRequired(message)
	return f
}

// Custom appends a caller-supplied predicate, run in registration order.
func (f *DateField) Custom(fn Check) *DateField {
	f.checks = append(f.checks, fn)
	return f
}

// Message overrides the failure text for the named criterion.
func (f *DateField) Message(criterion, message string) *DateField {
	f.messages[criterion] = message
	return f
}

// OnlyFuture fails values that fall strictly before local midnight of the
// current calendar day. Both sides of the comparison are truncated to the
// start of their day, so any moment of today passes. Absent values pass,
// presence is governed solely by Required.
func (f *DateField) OnlyFuture(message ...string) *DateField {
	f.setOverride("only_future", message)
	f.checks = append(f.checks, f.dateCheck("only_future", nil, func(t time.Time) bool {
		return !startOfDay(t).Before(startOfDay(time.Now()))
	}))
	return f
}

// Before requires the value to be strictly before t.
func (f *DateField) Before(t time.Time, message ...string) *DateField {
	f.setOverride("before", message)
	f.checks = append(f.checks, f.dateCheck("before", []any{t.Format("2006-01-02")}, func(v time.Time) bool {
		return v.Before(t)
	}))
	return f
}

// After requires the value to be strictly after t.
func (f *DateField) After(t time.Time, message ...string) *DateField {
	f.setOverride("after", message)
	f.checks = append(f.checks, f.dateCheck("after", []any{t.Format("2006-01-02")}, func(v time.Time) bool {
		return v.After(t)
	}))
	return f
}

// dateCheck wraps a time predicate into a Check. Absent and zero values pass
// silently, presence is governed solely by Required. Values that are not
// time.Time fail with the type message.
func (f *DateField) dateCheck(criterion string, args []any, ok func(t time.Time) bool) Check {
	return func(value any) error {
		var t time.Time
		switch v := value.(type) {
		case nil:
			return nil
		case time.Time:
			t = v
		case *time.Time:
			if v == nil {
				return nil
			}
			t = *v
		default:
			return errors.New(f.message("date"))
		}
		if t.IsZero() {
			return nil
		}
		if ok(t) {
			return nil
		}
		return errors.New(f.message(criterion, args...))
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
