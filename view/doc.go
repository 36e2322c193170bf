// Package view provides non-owning windows over contiguous sequences and
// the small catalog of linear-scan algorithms everything else in this
// module is built from.
//
// A View never owns its elements. Sub-views returned by After, Before,
// Around and friends share the backing storage of the view they came from
// and are valid only while that storage is alive and unmodified in length.
//
// The scan kernel is seven single-pass primitives over slices:
//
//	FindIf, FindIfNot, AfterIf, BeforeIf, AroundIf, MismatchFunc, CountIf
//
// Every other operation (Find, Equal, StartsWith, AllOf, Index, Split,
// TrimFunc, ...) is written in terms of them. All boundary operations use
// the first occurrence; there is no last-occurrence variant.
//
// Positions are indexes. A position equal to the length is the end.
//
// For iterator-based sequences (iter.Seq) the same algorithms are available
// with a Seq suffix.
package view
