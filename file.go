package fieldschema

import (
	"errors"
	"path/filepath"
	"strings"
)

// FileInfo is the metadata a FileField inspects. Callers fill it from their
// upload handling (original filename, size in bytes and the detected MIME
// type); the library never touches file content or storage.
type FileInfo struct {
	Name        string
	Size        int64
	ContentType string
}

// FileField validates FileInfo values.
type FileField struct {
	base
}

// Required marks the field mandatory. An optional message overrides the
// default "<Field> is required" text.
func (f *FileField) Required(message ...string) *FileField {
	f.setRequired(message)
	return f
}

// Custom appends a caller-supplied predicate, run in registration order.
func (f *FileField) Custom(fn Check) *FileField {
	f.checks = append(f.checks, fn)
	return f
}

// Message overrides the failure text for the named criterion.
func (f *FileField) Message(criterion, message string) *FileField {
	f.messages[criterion] = message
	return f
}

// MaxSize requires the file to be at most n bytes.
func (f *FileField) MaxSize(n int64, message ...string) *FileField {
	f.setOverride("max_size", message)
	f.checks = append(f.checks, f.fileCheck("max_size", []any{n}, func(fi FileInfo) bool {
		return fi.Size <= n
	}))
	return f
}

// Extensions requires the file name to carry one of the allowed extensions,
// compared case-insensitively. A missing leading dot in an allowed entry is
// tolerated, ".png" and "png" mean the same thing.
func (f *FileField) Extensions(allowed []string, message ...string) *FileField {
	normalized := make([]string, len(allowed))
	for i, ext := range allowed {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized[i] = ext
	}

	f.setOverride("extensions", message)
	f.checks = append(f.checks, f.fileCheck("extensions", []any{strings.Join(normalized, ", ")}, func(fi FileInfo) bool {
		ext := filepath.Ext(fi.Name)
		for _, want := range normalized {
			if strings.EqualFold(ext, want) {
				return true
			}
		}
		return false
	}))
	return f
}

// fileCheck wraps a FileInfo predicate into a Check. Absent values pass
// silently, presence is governed solely by Required. Values that are not
// FileInfo fail with the type message.
func (f *FileField) fileCheck(criterion string, args []any, ok func(fi FileInfo) bool) Check {
	return func(value any) error {
		var fi FileInfo
		switch v := value.(type) {
		case nil:
			return nil
		case FileInfo:
			fi = v
		case *FileInfo:
			if v == nil {
				return nil
			}
			fi = *v
		default:
			return errors.New(f.message("file"))
		}
		if ok(fi) {
			return nil
		}
		return errors.New(f.message(criterion, args...))
	}
}
