// Package str provides byte strings built on the view and vector packages.
//
// View is a read-only window over bytes that never copies: ViewOf aliases
// the memory of a Go string, ViewBytes aliases a byte slice, and every
// sub-view (After, Before, Around, Split, TrimSpace) aliases its parent.
// A View made by ViewOf must never be written through.
//
// String owns its bytes through a vector.Vector[byte]. The logical length
// never includes a terminator; CString returns a NUL-terminated copy for
// the places that need one.
package str
