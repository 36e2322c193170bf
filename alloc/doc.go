// Package alloc supplies the allocation backends used by the owning types
// in this module.
//
// # Overview
//
// Every owning container (own.Box, own.Slab, vector.Vector, str.String)
// can be handed an Allocator. The allocator decides where element storage
// comes from and keeps count of what was handed out and handed back, so
// ownership invariants such as "released exactly once" and "formatted with
// exactly one allocation" can be observed rather than trusted.
//
// Two allocators are provided:
//
//   - Heap allocates each request with make and counts it. Default returns
//     the process-wide instance.
//   - Arena is a chunked bump allocator. Requests are carved out of large
//     chunks; Free only records the release and memory comes back in bulk
//     through Reset or Release.
//
// # Basic Usage
//
//	a := alloc.NewArena(0) // Use default chunk size
//	defer a.Release()      // Clean up when done
//
//	// Raw bytes
//	buf := a.Alloc(1024)
//
//	// Typed storage
//	p := alloc.New[MyStruct](a)
//	s := alloc.MakeSlice[int](a, 100)
//
//	// Reset for reuse
//	a.Reset()
//
// # Pointer-free storage
//
// Allocator memory is plain bytes, invisible to the garbage collector's
// pointer scan. The typed helpers therefore only carve storage out of an
// allocator when the element type holds no pointers (see PointerFree).
// Element types containing pointers, strings, slices, maps, interfaces or
// channels always come from the Go heap and are not counted.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. Wrap any allocator with NewLocked
// to share it between goroutines:
//
//	shared := alloc.NewLocked(alloc.NewArena(0))
//
// Heap counts with atomics and may be shared as is.
//
// # Important Notes
//
//   - Memory returned by an Arena is only valid while the arena exists
//   - Use after Release panics
//   - Memory is zeroed on allocation
//   - Every allocation is aligned to the pointer size
package alloc
