// Package errors provides the structured error type used by the checked
// accessors and the formatting engine in this module.
//
// Errors are categorized by Op (the operation that failed, e.g.
// "vector.get") and Kind (the error category). Unchecked accessors do not
// return errors at all; every one of them has a checked twin that reports
// one of the kinds below instead of panicking.
//
// Use the Builder for structured construction:
//
//	err := errors.New("vector.get", errors.KindOutOfRange).
//		Index(7).
//		Length(3).
//		Build()
//
// Or the convenience constructors:
//
//	err := errors.OutOfRange("vector.get", 7, 3)
//	err := errors.Empty("vector.pop_back")
//
// Kind sentinels work with the standard library:
//
//	if errors.Is(err, errors.ErrOutOfRange) { ... }
package errors
