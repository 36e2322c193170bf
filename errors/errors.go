package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfRange    Kind = "out_of_range"
	KindEmpty         Kind = "empty"
	KindReleased      Kind = "released"
	KindFull          Kind = "full"
	KindUnsupported   Kind = "unsupported"
	KindArgumentCount Kind = "argument_count"
	KindSizeMismatch  Kind = "size_mismatch"
	KindWrite         Kind = "write"
	KindInvalidInput  Kind = "invalid_input"
)

// Kind sentinels. They carry no Op, so they match any error of the same Kind.
var (
	ErrOutOfRange    = &Error{Kind: KindOutOfRange}
	ErrEmpty         = &Error{Kind: KindEmpty}
	ErrReleased      = &Error{Kind: KindReleased}
	ErrFull          = &Error{Kind: KindFull}
	ErrUnsupported   = &Error{Kind: KindUnsupported}
	ErrArgumentCount = &Error{Kind: KindArgumentCount}
	ErrSizeMismatch  = &Error{Kind: KindSizeMismatch}
	ErrWrite         = &Error{Kind: KindWrite}
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Op     string
	Kind   Kind
	Type   string
	Detail string
	Index  int
	Length int

	hasIndex bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteByte('[')
		b.WriteString(e.Op)
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.hasIndex {
		b.WriteString(": index ")
		b.WriteString(strconv.Itoa(e.Index))
		b.WriteString(" (length ")
		b.WriteString(strconv.Itoa(e.Length))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		if e.Type != "" || e.hasIndex {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without an Op
// matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" {
		return e.Kind == t.Kind
	}
	return e.Op == t.Op && e.Kind == t.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op string, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Index records the offending index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	b.err.hasIndex = true
	return b
}

// Length records the length the index was checked against
func (b *Builder) Length(n int) *Builder {
	b.err.Length = n
	return b
}

// Type sets the Go type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// OutOfRange creates an index out of range error
func OutOfRange(op string, index, length int) *Error {
	return New(op, KindOutOfRange).Index(index).Length(length).Build()
}

// Empty creates an error for an operation that needs at least one element
func Empty(op string) *Error {
	return &Error{Op: op, Kind: KindEmpty}
}

// Released creates an error for access through an empty ownership handle
func Released(op string) *Error {
	return &Error{Op: op, Kind: KindReleased}
}

// Full creates an error for a push into a container that may not grow
func Full(op string, capacity int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindFull,
		Detail: fmt.Sprintf("capacity %d reached", capacity),
	}
}

// Unsupported creates an error for a value of a type with no handler
func Unsupported(op string, typeName string) *Error {
	return &Error{Op: op, Kind: KindUnsupported, Type: typeName}
}

// Wrap wraps an existing error with additional context
func Wrap(op string, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
