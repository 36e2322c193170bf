package format

import (
	"io"

	"github.com/pavanmanishd/corekit/str"
)

// Template is a template string bound to the default engine.
type Template string

// Size returns the exact rendered size of t with args.
func (t Template) Size(args ...any) (int, error) {
	return defaultEngine.Size(string(t), args...)
}

// Format renders t into a new String.
func (t Template) Format(args ...any) (str.String, error) {
	return defaultEngine.Format(string(t), args...)
}

// FormatTo renders t into w.
func (t Template) FormatTo(w io.Writer, args ...any) (int, error) {
	return defaultEngine.FormatTo(w, string(t), args...)
}
