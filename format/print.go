package format

import (
	"io"
	"os"

	"github.com/pavanmanishd/corekit/str"
)

var defaultEngine = &Engine{}

// Size returns the exact rendered size of tpl with args.
func Size(tpl string, args ...any) (int, error) {
	return defaultEngine.Size(tpl, args...)
}

// Format renders tpl into a new String.
func Format(tpl string, args ...any) (str.String, error) {
	return defaultEngine.Format(tpl, args...)
}

// Sprint renders tpl into a Go string.
func Sprint(tpl string, args ...any) (string, error) {
	s, err := defaultEngine.Format(tpl, args...)
	if err != nil {
		return "", err
	}
	defer s.Release()
	return s.String(), nil
}

// FormatTo renders tpl into w.
func FormatTo(w io.Writer, tpl string, args ...any) (int, error) {
	return defaultEngine.FormatTo(w, tpl, args...)
}

// Print renders tpl to standard output.
func Print(tpl string, args ...any) (int, error) {
	return defaultEngine.FormatTo(os.Stdout, tpl, args...)
}

// Println renders tpl to standard output followed by a newline.
func Println(tpl string, args ...any) (int, error) {
	return defaultEngine.println(os.Stdout, tpl, args)
}
