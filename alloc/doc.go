// Package alloc provides the tracked allocator used by every bstr buffer.
//
// # Overview
//
// The allocator hands out plain byte blocks and maintains a process-wide
// "bytes currently allocated" counter that is updated atomically on every
// Alloc, Realloc, and Free. The counter makes the library's memory footprint
// observable (Used) and, combined with an optional byte budget (WithLimit),
// gives allocation failure a concrete, testable meaning: a request that would
// push the counter past the budget fails.
//
// # Out-Of-Memory Policy
//
// What happens on a failed request is a policy carried by the allocator, not
// process-wide mutable state. The default policy logs the requested size and
// panics, matching the traditional fatal behavior of tracked C allocators.
// Embedders that prefer recoverable failures install their own handler:
//
//	a := alloc.New(
//	    alloc.WithLimit(64 << 20),
//	    alloc.WithOOMHandler(func(size int) {
//	        metrics.OOMRequests.Inc()
//	    }),
//	)
//
// When the handler returns instead of aborting, Alloc and Realloc report
// errs.ErrAllocationFailure and callers must check every result.
//
// # Memory Statistics
//
// RSS and MemorySize answer the two platform questions tracked allocators
// traditionally expose: the resident set size of the current process and the
// physical memory size of the machine. On unsupported platforms RSS falls
// back to the tracked counter.
//
// # Thread Safety
//
// All methods are safe for concurrent use. The counter is the only shared
// mutable state the string core relies on across goroutines.
package alloc
