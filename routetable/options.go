package routetable

// Options configures how Build computes the pairwise route table.
type Options struct {
	// Parallel enables a bounded worker pool over ordered pairs instead of
	// a single sequential pass. Off by default.
	Parallel bool

	// Workers is the pool size when Parallel is true. Ignored otherwise.
	// Must be positive when Parallel is true; DefaultOptions leaves it at
	// a sensible default.
	Workers int
}

// DefaultOptions returns sequential computation — the simplest, safest
// default for small scenes.
func DefaultOptions() Options {
	return Options{Parallel: false, Workers: 4}
}

// WithParallel enables the bounded worker pool with the given worker
// count. workers <= 0 leaves the existing Workers value unchanged (4 when
// applied to DefaultOptions; Build treats a non-positive value as 1).
func WithParallel(workers int) func(*Options) {
	return func(o *Options) {
		o.Parallel = true
		if workers > 0 {
			o.Workers = workers
		}
	}
}
