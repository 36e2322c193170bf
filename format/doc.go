// Package format renders templates with '#' placeholders against
// heterogeneous arguments in two phases.
//
// Phase one walks the template and asks every argument for its exact
// rendered size. Phase two allocates once (or not at all, when writing to
// an io.Writer) and writes each argument through a Sink. A formatter must
// therefore write exactly as many bytes as it reported.
//
// Placeholder policy:
//
//   - each '#' consumes the next argument, in order;
//   - a '#' left over once the arguments run out is copied as literal text;
//   - more arguments than '#' characters is an errors.KindArgumentCount
//     error, reported before any byte is written;
//   - an argument with no formatter is an errors.KindUnsupported error, as
//     is a sequence nested more than 64 deep.
//
// Values are rendered by, in order of precedence: an Entry registered for
// the exact dynamic type, the Formattable interface, and the built-in rules
// for the value's kind:
//
//	bool                 true / false
//	signed integers      decimal, leading '-' for negatives, never -0
//	unsigned integers    decimal
//	string               verbatim
//	slices and arrays    {e0, e1, e2}
//	Slice() []E method   as the returned slice
//
// str.View and *str.String are registered as verbatim text. Char, Hex and
// Bin wrap a value to render a single byte or a fixed-width dump of its raw
// storage.
package format
