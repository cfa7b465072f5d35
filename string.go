package fieldschema

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// StringField validates string values.
type StringField struct {
	base
}

// Required marks the field mandatory. An optional message overrides the
// default "<Field> is required" text.
func (f *StringField) Required(message ...string) *StringField {
	f.setRequired(message)
	return f
}

// Custom appends a caller-supplied predicate, run in registration order.
func (f *StringField) Custom(fn Check) *StringField {
	f.checks = append(f.checks, fn)
	return f
}

// Message overrides the failure text for the named criterion.
func (f *StringField) Message(criterion, message string) *StringField {
	f.messages[criterion] = message
	return f
}

// MinLen requires at least n characters.
func (f *StringField) MinLen(n int, message ...string) *StringField {
	f.setOverride("min_len", message)
	f.checks = append(f.checks, f.stringCheck("min_len", []any{n}, func(s string) bool {
		return len(s) >= n
	}))
	return f
}

// MaxLen requires at most n characters.
func (f *StringField) MaxLen(n int, message ...string) *StringField {
	f.setOverride("max_len", message)
	f.checks = append(f.checks, f.stringCheck("max_len", []any{n}, func(s string) bool {
		return len(s) <= n
	}))
	return f
}

// Email requires an RFC 5322 address that also holds up to typical web use:
// a single @, a non-empty local part and a dotted domain without empty
// labels.
func (f *StringField) Email(message ...string) *StringField {
	f.setOverride("email", message)
	f.checks = append(f.checks, f.stringCheck("email", nil, validEmail))
	return f
}

// Match requires the value to match pattern. The pattern is compiled once at
// registration and panics on syntax errors, misconfigured schemas should
// fail at startup rather than per request. The description names the pattern
// in the default failure message.
func (f *StringField) Match(pattern, description string, message ...string) *StringField {
	re := regexp.MustCompile(pattern)
	f.setOverride("match", message)
	f.checks = append(f.checks, f.stringCheck("match", []any{description}, re.MatchString))
	return f
}

// UUID requires a canonical UUID string. Length and hyphen positions are
// checked before parsing to reject garbage cheaply.
func (f *StringField) UUID(message ...string) *StringField {
	f.setOverride("uuid", message)
	f.checks = append(f.checks, f.stringCheck("uuid", nil, func(s string) bool {
		if len(s) != 36 {
			return false
		}
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	}))
	return f
}

// stringCheck wraps a string predicate into a Check. Absent and blank values
// pass silently, presence is governed solely by Required. Non-string values
// fail with the type message.
func (f *StringField) stringCheck(criterion string, args []any, ok func(s string) bool) Check {
	return func(value any) error {
		if value == nil {
			return nil
		}
		s, isString := value.(string)
		if !isString {
			return errors.New(f.message("string"))
		}
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if ok(s) {
			return nil
		}
		return errors.New(f.message(criterion, args...))
	}
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
