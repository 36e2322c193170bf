package vector

import "github.com/pavanmanishd/corekit/alloc"

type config struct {
	capacity int
	alloc    alloc.Allocator
}

// Option configures a Vector or Fixed at construction.
type Option func(*config)

// WithCapacity preallocates room for n elements. Non-positive n is ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithAllocator draws storage from a instead of the Go heap.
func WithAllocator(a alloc.Allocator) Option {
	return func(c *config) {
		c.alloc = a
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
