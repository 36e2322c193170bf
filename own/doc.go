// Package own provides move-only ownership handles.
//
// A Box owns a single value and a Slab owns a contiguous array of values.
// At most one handle is ever responsible for releasing a given piece of
// storage: Move transfers that responsibility and leaves the source empty,
// and Release hands the storage back to its allocator exactly once, however
// many times it is called.
//
// Go cannot forbid copying a struct, so the rule is by convention: never
// copy a handle by assignment, only through Move. Handles are incomparable
// so that accidental equality checks do not compile.
//
// Element access through At, Ptr, Set, Get (on Box) and Value is unchecked:
// the owning container is responsible for staying inside the storage it
// tracks. The checked twins (Load, Slab.Get, Slab.Store) report
// errors.KindReleased or errors.KindOutOfRange instead.
package own
