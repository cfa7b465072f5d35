package fieldschema

import (
	"fmt"
	"log/slog"
	"strings"
)

// defaultMessages maps criterion names to fmt templates. The first template
// argument is always the readable field name; rule parameters follow.
var defaultMessages = map[string]string{
	"required":    "%s is required",
	"string":      "%s must be a string",
	"min_len":     "%s must be at least %d characters long",
	"max_len":     "%s must be at most %d characters long",
	"email":       "%s must be a valid email address",
	"match":       "%s must match %s pattern",
	"uuid":        "%s must be a valid UUID",
	"array":       "%s must be a list",
	"min_items":   "%s must have at least %d items",
	"max_items":   "%s must have at most %d items",
	"file":        "%s must be a file",
	"max_size":    "%s must be at most %d bytes",
	"extensions":  "%s must be one of the file types: %s",
	"date":        "%s must be a date",
	"only_future": "%s can't be in the past",
	"before":      "%s must be before %s",
	"after":       "%s must be after %s",
}

var diagLogger *slog.Logger

// SetLogger replaces the logger used for internal-consistency diagnostics.
// Passing nil restores slog.Default. Set it once before building schemas;
// the library never reconfigures it on its own.
func SetLogger(l *slog.Logger) {
	diagLogger = l
}

func logger() *slog.Logger {
	if diagLogger != nil {
		return diagLogger
	}
	return slog.Default()
}

// message resolves the failure text for a criterion: a caller override wins
// verbatim, otherwise the default template is rendered with the readable
// field name. A criterion without a default template is a library
// inconsistency, not a data problem, so it is logged and downgraded to a
// generic message instead of aborting a user-facing request.
func (b *base) message(criterion string, args ...any) string {
	if msg, ok := b.messages[criterion]; ok {
		return msg
	}

	tmpl, ok := defaultMessages[criterion]
	if !ok {
		logger().Warn("no default message for validation criterion",
			slog.String("criterion", criterion),
			slog.String("field", b.name),
		)
		return "Unknown error"
	}

	return fmt.Sprintf(tmpl, append([]any{Readable(b.name)}, args...)...)
}

// Readable converts a snake_case field name into a human-readable label:
// underscores become spaces, the first character is uppercased and the rest
// lowercased. "first_name" becomes "First name".
func Readable(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
