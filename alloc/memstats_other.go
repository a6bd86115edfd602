//go:build !linux

package alloc

// RSS returns the tracked used-bytes counter on platforms without an
// OS-specific resident set size query. Fragmentation is invisible through
// this estimate.
func RSS() int64 {
	return Default().Used()
}

// MemorySize returns 0 on platforms without an OS-specific physical memory
// query.
func MemorySize() int64 {
	return 0
}
